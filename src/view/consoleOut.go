package view

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/logrusorgru/aurora"

	"gridclip/src/matrix"
)

//ConsoleOut prints the run summary and the matrix preview to w
type ConsoleOut struct {
	w  io.Writer
	au aurora.Aurora
}

func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

//Configuration prints the generator options
func (c *ConsoleOut) Configuration(o matrix.Options) {
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension": fmt.Sprintf("%v x %v", o.Size, o.Size),
		"Seed":      o.Seed,
		"Marks":     o.Marks,
	})
}

//Summary prints the result of the run
func (c *ConsoleOut) Summary(m matrix.Matrix, copied bool) {
	fmt.Fprintln(c.w, "Finished:")
	c.printHashData(map[string]interface{}{
		"Live cells": m.LiveCells(),
		"Copied":     copied,
	})
}

//Matrix prints the rendered matrix, live cells highlighted
//without colors the output equals Render(m)
func (c *ConsoleOut) Matrix(m matrix.Matrix) {
	var b bytes.Buffer
	for _, l := range m.Entities {
		for _, e := range l {
			if e == matrix.Live {
				b.WriteString(c.au.Green("1").Bold().String())
			} else {
				b.WriteString(c.au.Faint("0").String())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	_, _ = io.Copy(c.w, &b)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}
