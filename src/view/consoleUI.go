package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridclip/src/matrix"
)

type keyBindings struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

//ConsoleUI is the interactive preview shown before the matrix is copied
type ConsoleUI struct {
	m          matrix.Matrix
	o          matrix.Options
	g          *gocui.Gui
	k          []keyBindings
	confirmed  bool
	liveFiller string
	deadFiller string
}

func NewViewTerminal(m matrix.Matrix, o matrix.Options) *ConsoleUI {

	var err error
	t := ConsoleUI{
		m:          m,
		o:          o,
		liveFiller: aurora.Green("1").Bold().String(),
		deadFiller: aurora.Faint("0").String(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{'c', "C", "Copy and exit", t.cmdCopy},
		{gocui.KeyEnter, "ENTER", "Copy and exit", t.cmdCopy},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the UI loop until the user exits
//returns true if the user asked to copy the matrix
func (t *ConsoleUI) Start() (confirmed bool, err error) {
	defer t.g.Close()
	if err = t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return false, err
	}
	return t.confirmed, nil
}

func (t *ConsoleUI) renderField(v *gocui.View) {
	v.Clear()
	var b bytes.Buffer
	for i, l := range t.m.Entities {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, e := range l {
			if e == matrix.Live {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
			b.WriteByte(' ')
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(v *gocui.View) {
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.o.Size, t.o.Size))
	_, _ = fmt.Fprintln(v, t.renderProp("Seed", "%v", t.o.Seed))
	_, _ = fmt.Fprintln(v, t.renderProp("Marks", "%v", t.o.Marks))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", t.m.LiveCells()))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 24
	fieldWidth := 2*t.m.Size + 1
	fieldHeight := t.m.Size + 1

	if maxX < leftColumnWidth+fieldWidth+2 || maxY < fieldHeight+4 {
		_ = g.DeleteView("status")
		_ = g.DeleteView("matrix")
		_ = g.DeleteView("help")
		v, err := g.SetView("small", 0, 0, maxX-1, maxY-1)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, aurora.Red("Terminal too small, press q to exit"))
		return nil
	}
	_ = g.DeleteView("small")

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, 6); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderStatus(v)
	}

	if v, err := g.SetView("matrix", leftColumnWidth+1, 0, leftColumnWidth+1+fieldWidth, fieldHeight); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Matrix"
		v.Frame = true
		t.renderField(v)
	}

	if v, err := g.SetView("help", -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var parts []string
		for _, k := range t.k {
			parts = append(parts, aurora.Green(k.name).String()+": "+k.descr)
		}
		_, _ = fmt.Fprintln(v, "KEYBINDINGS: "+strings.Join(parts, ", "))
	}

	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdCopy(_ *gocui.View) error {
	t.confirmed = true
	return gocui.ErrQuit
}
