package view

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gridclip/src/matrix"
)

var ErrEmpty = errors.New("empty matrix text")

//Render converts the matrix to text
//every cell is written as its digit plus a space, every row ends with a line feed
func Render(m matrix.Matrix) string {
	var b bytes.Buffer
	b.Grow(m.Size * (2*m.Size + 1))
	for _, l := range m.Entities {
		for _, c := range l {
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

//Parse reads the text produced by Render back into a matrix
//tokens are split on any whitespace, rows on line feeds
func Parse(text string) (matrix.Matrix, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return matrix.Matrix{}, ErrEmpty
	}
	m := matrix.New(len(lines))
	for row, l := range lines {
		tokens := strings.Fields(l)
		if len(tokens) != m.Size {
			return matrix.Matrix{}, fmt.Errorf("row %d: got %d cells, want %d", row, len(tokens), m.Size)
		}
		for col, tok := range tokens {
			switch tok {
			case "0":
			case "1":
				m.Entities[row][col] = matrix.Live
			default:
				return matrix.Matrix{}, fmt.Errorf("row %d, col %d: invalid cell %q", row, col, tok)
			}
		}
	}
	return m, nil
}
