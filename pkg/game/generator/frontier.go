package generator

// frontier is the growing tree working set: a growable slice with an explicit
// active range [first, last]. The tail acts as a stack, the whole range as an
// unordered pool.
type frontier struct {
	cells []int
	first int
	last  int
}

func newFrontier(capacity, start int) *frontier {
	cells := make([]int, 1, capacity)
	cells[0] = start
	return &frontier{cells: cells, first: 0, last: 0}
}

// Empty returns true once every active cell has been retired
func (f *frontier) Empty() bool {
	return f.first > f.last
}

// Len returns the number of active cells
func (f *frontier) Len() int {
	return f.last - f.first + 1
}

// Push appends a cell at last+1
func (f *frontier) Push(cell int) {
	f.last++
	if f.last < len(f.cells) {
		f.cells[f.last] = cell
		return
	}
	f.cells = append(f.cells, cell)
}

// At returns the cell stored in slot i
func (f *frontier) At(i int) int {
	return f.cells[i]
}

// RetireLast drops the tail cell
func (f *frontier) RetireLast() {
	f.last--
}

// RetireAt drops slot i by moving the cell at first into it. Order is not preserved.
func (f *frontier) RetireAt(i int) {
	f.cells[i] = f.cells[f.first]
	f.first++
}
