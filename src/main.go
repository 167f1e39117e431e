package main

import (
	"io"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"gridclip/src/clipboard"
	"gridclip/src/matrix"
	"gridclip/src/view"
)

type EnvOptions struct {
	interactive bool
	print       bool
	verbose     bool
	noColor     bool
}

//previewer asks the user before the matrix is copied
type previewer func(m matrix.Matrix, o matrix.Options) (confirmed bool, err error)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridclip: ")

	eo := initOptions()

	var preview previewer
	if eo.interactive {
		preview = func(m matrix.Matrix, o matrix.Options) (bool, error) {
			return view.NewViewTerminal(m, o).Start()
		}
	}

	if err := run(eo, matrix.DefaultOptions, clipboard.NewSystem(), preview, os.Stdout); err != nil {
		if eo.noColor {
			log.Fatalln(err)
		}
		log.Fatalln(aurora.Red(err.Error()).String())
	}
}

//run generates the matrix, renders it and writes the text to the sink
//the sink is called at most once with the complete text
func run(eo *EnvOptions, o matrix.Options, sink clipboard.Sink, preview previewer, w io.Writer) error {
	out := view.NewConsoleOut(w, !eo.noColor)
	if eo.verbose {
		out.Configuration(o)
	}

	m := matrix.Generate(&o)
	text := view.Render(m)

	if eo.print {
		out.Matrix(m)
	}

	copied := false
	confirmed := true
	if preview != nil {
		var err error
		if confirmed, err = preview(m, o); err != nil {
			return err
		}
	}
	if confirmed {
		if err := sink.Write(text); err != nil {
			return err
		}
		copied = true
	}

	if eo.verbose {
		out.Summary(m, copied)
	}
	return nil
}

func initOptions() (eo *EnvOptions) {
	eo = &EnvOptions{}
	flaggy.SetName("gridclip")
	flaggy.SetDescription("Copies a seeded 20 x 20 binary matrix to the clipboard")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Bool(&eo.interactive, "n", "interactive", "Preview the matrix and copy it on confirmation")
	flaggy.Bool(&eo.print, "p", "print", "Print the matrix to stdout")
	flaggy.Bool(&eo.verbose, "v", "verbose", "Print the configuration and the summary")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable colored output")

	flaggy.Parse()

	return
}
