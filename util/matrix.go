package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix represents a 2 dimensional matrix of ints.
type Matrix struct {
	nRow, nCol int
	data       []int // row-major nRow*nCol array.
}

// NewMatrix returns an n x m matrix with all cells set to zero.
func NewMatrix(n, m int) Matrix {
	if n < 0 || m < 0 {
		panic(fmt.Sprintf("negative matrix dimensions: %d x %d", n, m))
	}
	return Matrix{
		nRow: n,
		nCol: m,
		data: make([]int, n*m),
	}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.nRow }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.nCol }

// At returns the value of cell (i, j).
func (m Matrix) At(i, j int) int {
	return m.data[i*m.nCol+j]
}

// Set sets cell (i, j) to v.
func (m Matrix) Set(i, j, v int) {
	m.data[i*m.nCol+j] = v
}

// Row returns row i. The returned slice aliases the matrix storage.
func (m Matrix) Row(i int) []int {
	return m.data[i*m.nCol : (i+1)*m.nCol]
}

// String returns a string representation of a matrix.
// TODO(ayip): this could be implemented using text/tabwriter.
func (m Matrix) String() (r string) {
	maxLength := 0
	for _, d := range m.data {
		if l := len(strconv.Itoa(d)); l > maxLength {
			maxLength = l
		}
	}

	lines := []string{"\n"}
	for i := 0; i < m.nRow; i++ {
		var parts []string
		for j := 0; j < m.nCol; j++ {
			parts = append(parts, fmt.Sprintf("%0*s", maxLength, strconv.Itoa(m.data[i*m.nCol+j])))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}
