// Package ppmi reweights co-occurrence counts into positive pointwise
// mutual information, which discounts pairs that co-occur only because both
// tokens are frequent.
package ppmi

import (
	"fmt"
	"math"

	"github.com/cognicore/distsem/pkg/distsem/cooc"
	"github.com/cognicore/distsem/pkg/distsem/internalerr"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

// Epsilon is the stabilizing constant added inside the PPMI logarithm and to
// vector norms in cosine scoring. It is the machine epsilon of a 32-bit
// float, matching the reference behavior this pipeline reproduces.
const Epsilon = 1.1920929e-7

// Matrix holds non-negative PPMI weights, same shape as the count matrix it
// was derived from.
type Matrix struct {
	size  int
	cells []float64
}

// Transform computes the PPMI matrix for a count matrix.
//
// For total mass N and column marginals s, each cell becomes
// log2(count*N/(s[i]*s[j]) + Epsilon), clamped to 0 when non-positive.
// The products are computed in float64, so large counts cannot wrap.
//
// Transform fails fast instead of emitting NaN or Inf: an empty matrix
// returns ErrEmptyMatrix, and a zero total mass or a token with zero
// marginal frequency returns ErrZeroMarginal.
func Transform(m *cooc.Matrix) (*Matrix, error) {
	if m == nil || m.Size() == 0 {
		return nil, fmt.Errorf("ppmi transform: %w", internalerr.ErrEmptyMatrix)
	}

	total := m.Total()
	if total == 0 {
		return nil, fmt.Errorf("ppmi transform: total co-occurrence mass is zero: %w", internalerr.ErrZeroMarginal)
	}

	sums := m.ColumnSums()
	for id, s := range sums {
		if s == 0 {
			return nil, fmt.Errorf("ppmi transform: token id %d: %w", id, internalerr.ErrZeroMarginal)
		}
	}

	size := m.Size()
	out := &Matrix{
		size:  size,
		cells: make([]float64, size*size),
	}

	n := float64(total)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			count := float64(m.At(vocab.WordID(i), vocab.WordID(j)))
			pmi := math.Log2(count*n/(float64(sums[i])*float64(sums[j])) + Epsilon)
			if pmi > 0 {
				out.cells[i*size+j] = pmi
			}
		}
	}

	return out, nil
}

// Size returns the vocabulary size the matrix was built for.
func (m *Matrix) Size() int { return m.size }

// At returns the PPMI weight for the (center, neighbor) pair.
func (m *Matrix) At(center, neighbor vocab.WordID) float64 {
	return m.cells[int(center)*m.size+int(neighbor)]
}

// Row returns a copy of the row for id.
func (m *Matrix) Row(id vocab.WordID) []float64 {
	row := make([]float64, m.size)
	copy(row, m.cells[int(id)*m.size:int(id+1)*m.size])
	return row
}
