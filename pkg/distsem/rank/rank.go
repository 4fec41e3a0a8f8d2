// Package rank scores vocabulary words against a query word by cosine
// similarity of their matrix rows.
package rank

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cognicore/distsem/pkg/distsem/ppmi"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

// Matrix is any square matrix whose rows serve as word vectors. Both the raw
// count matrix and the PPMI matrix satisfy it.
type Matrix interface {
	Size() int
	Row(id vocab.WordID) []float64
}

// Result pairs a vocabulary word with its similarity score.
type Result struct {
	Word  string
	Score float64
}

// Cosine computes the stabilized cosine similarity of two vectors. Each
// vector is scaled by 1/(norm+Epsilon) before the dot product, which keeps
// all-zero vectors at score 0 instead of dividing by zero. The per-side
// scaling order is part of the contract; keep it.
func Cosine(x, y []float64) float64 {
	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	floats.ScaleTo(xs, 1/(floats.Norm(x, 2)+ppmi.Epsilon), x)
	floats.ScaleTo(ys, 1/(floats.Norm(y, 2)+ppmi.Epsilon), y)
	return floats.Dot(xs, ys)
}

// MostSimilar ranks every vocabulary word except the query by cosine
// similarity against the query's row. An unknown query returns nil, which is
// a "no match" signal rather than an error. The result is sorted by
// descending score; equal scores order by descending vocabulary id, which
// keeps the output deterministic. No truncation happens here; top-k
// selection belongs to the caller.
func MostSimilar(query string, wordToID vocab.WordToID, idToWord vocab.IDToWord, m Matrix) []Result {
	queryID, ok := wordToID.Lookup(query)
	if !ok {
		return nil
	}

	queryVec := m.Row(queryID)

	type scored struct {
		id    vocab.WordID
		score float64
	}
	candidates := make([]scored, 0, m.Size()-1)
	for j := 0; j < m.Size(); j++ {
		id := vocab.WordID(j)
		if id == queryID {
			continue
		}
		candidates = append(candidates, scored{id: id, score: Cosine(m.Row(id), queryVec)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].id > candidates[j].id
	})

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Word: idToWord[c.id], Score: c.score}
	}
	return results
}
