// Package cooc builds windowed co-occurrence count matrices over a corpus.
package cooc

import (
	"fmt"

	"github.com/cognicore/distsem/pkg/distsem/internalerr"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

// Matrix is a square matrix of co-occurrence counts. Cell (i, j) holds the
// number of times token j appeared within the window of an occurrence of
// token i, counted once per occurrence. The matrix is symmetric because every
// in-range pair is seen from both ends during the scan.
type Matrix struct {
	size  int
	cells []int64
}

// Build counts co-occurrences over the corpus. For each position, every
// token at offsets 1..windowSize on either side is counted; offsets that
// fall outside the corpus are skipped. A token landing inside its own window
// (a repeat within windowSize positions) is counted like any other neighbor.
func Build(corpus vocab.Corpus, windowSize int) (*Matrix, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("build co-occurrence matrix: %w", internalerr.ErrEmptyCorpus)
	}
	if windowSize < 0 {
		return nil, fmt.Errorf("build co-occurrence matrix: window size %d: %w", windowSize, internalerr.ErrInvalidInput)
	}

	size := int(corpus.MaxID()) + 1
	m := &Matrix{
		size:  size,
		cells: make([]int64, size*size),
	}

	for pos, center := range corpus {
		for offset := 1; offset <= windowSize; offset++ {
			if left := pos - offset; left >= 0 {
				m.cells[int(center)*size+int(corpus[left])]++
			}
			if right := pos + offset; right < len(corpus) {
				m.cells[int(center)*size+int(corpus[right])]++
			}
		}
	}

	return m, nil
}

// Size returns the vocabulary size the matrix was built for.
func (m *Matrix) Size() int { return m.size }

// At returns the count for the (center, neighbor) pair.
func (m *Matrix) At(center, neighbor vocab.WordID) int64 {
	return m.cells[int(center)*m.size+int(neighbor)]
}

// Row returns a copy of the row for id as a float64 vector, suitable for
// cosine scoring.
func (m *Matrix) Row(id vocab.WordID) []float64 {
	row := make([]float64, m.size)
	for j := 0; j < m.size; j++ {
		row[j] = float64(m.cells[int(id)*m.size+j])
	}
	return row
}

// Total returns the sum of all cells, the total co-occurrence mass.
func (m *Matrix) Total() int64 {
	var total int64
	for _, c := range m.cells {
		total += c
	}
	return total
}

// ColumnSums returns the per-column marginals.
func (m *Matrix) ColumnSums() []int64 {
	sums := make([]int64, m.size)
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			sums[j] += m.cells[i*m.size+j]
		}
	}
	return sums
}

// NonZero returns the number of cells holding a non-zero count.
func (m *Matrix) NonZero() int {
	n := 0
	for _, c := range m.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
