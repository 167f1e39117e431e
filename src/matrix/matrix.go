package matrix

//Cell is the value of one matrix position, only ever Dead or Live
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

//default options
const (
	DefSize  = 20
	DefSeed  = 13213
	DefMarks = 200
)

//Options represents the generator's options
type Options struct {
	Size  int    //width and height of the square matrix
	Seed  uint32 //seed of the MT19937 source
	Marks int    //number of set-operations, collisions included
}

var DefaultOptions = Options{
	Size:  DefSize,
	Seed:  DefSeed,
	Marks: DefMarks,
}

//Matrix is the square grid of cells
//Entities[row][col], row 0 first
type Matrix struct {
	Size     int
	Entities [][]Cell
}

//New allocates the zeroed matrix, all rows share one backing slice
func New(size int) Matrix {
	m := Matrix{Size: size, Entities: make([][]Cell, size)}
	b := make([]Cell, size*size)
	for i := range m.Entities {
		start := size * i
		m.Entities[i] = b[start : start+size : start+size]
	}
	return m
}

//Generate builds the matrix described by o
//a nil o means DefaultOptions
func Generate(o *Options) Matrix {
	if o == nil {
		o = &DefaultOptions
	}
	m := New(o.Size)
	m.Scatter(NewMT19937(o.Seed), o.Marks)
	return m
}

//Scatter performs marks set-operations at positions drawn from src
//the row is drawn before the column
func (m Matrix) Scatter(src Source, marks int) {
	for i := 0; i < marks; i++ {
		row := src.Intn(m.Size)
		col := src.Intn(m.Size)
		m.Settle([][]int{{row, col}})
	}
}

//Settle sets the cells at the [row, col] coordinates live
//coordinates outside the matrix are skipped
func (m Matrix) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 || v[0] < 0 || v[1] < 0 || v[0] >= m.Size || v[1] >= m.Size {
			continue
		}
		m.Entities[v[0]][v[1]] = Live
	}
}

//LiveCells calculates the count of live cells
func (m Matrix) LiveCells() int {
	liveCells := 0
	m.Walk(func(row int, col int, c Cell) {
		if c == Live {
			liveCells++
		}
	})
	return liveCells
}

//Walk walks the entire matrix row by row and calls cb for each cell
func (m Matrix) Walk(cb func(row int, col int, c Cell)) {
	for row := range m.Entities {
		for col := range m.Entities[row] {
			cb(row, col, m.Entities[row][col])
		}
	}
}

//Equal reports whether both matrices have the same size and cells
func (m Matrix) Equal(o Matrix) bool {
	if m.Size != o.Size || len(m.Entities) != len(o.Entities) {
		return false
	}
	for row := range m.Entities {
		if len(m.Entities[row]) != len(o.Entities[row]) {
			return false
		}
		for col := range m.Entities[row] {
			if m.Entities[row][col] != o.Entities[row][col] {
				return false
			}
		}
	}
	return true
}
