// Package stats reports corpus and matrix statistics for inspection output.
package stats

import (
	"sort"

	"github.com/cognicore/distsem/pkg/distsem/cooc"
	"github.com/cognicore/distsem/pkg/distsem/ppmi"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

// Summary describes one built model.
type Summary struct {
	TokenCount int     `json:"token_count"`
	VocabSize  int     `json:"vocab_size"`
	TotalMass  int64   `json:"total_mass"`
	NonZero    int     `json:"non_zero_cells"`
	Density    float64 `json:"density"`
}

// Summarize collects corpus and count-matrix statistics.
func Summarize(corpus vocab.Corpus, counts *cooc.Matrix) Summary {
	s := Summary{
		TokenCount: len(corpus),
		VocabSize:  counts.Size(),
		TotalMass:  counts.Total(),
		NonZero:    counts.NonZero(),
	}
	if cells := counts.Size() * counts.Size(); cells > 0 {
		s.Density = float64(s.NonZero) / float64(cells)
	}
	return s
}

// PairStat describes one co-occurring word pair.
type PairStat struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Count  int64   `json:"count"`
	Weight float64 `json:"ppmi,omitempty"`
}

// TopPairs returns the most frequent co-occurring pairs, each unordered pair
// reported once. When a PPMI matrix is given its weight is attached. Pairs
// order by count, then weight, then ascending ids, so output is stable.
func TopPairs(counts *cooc.Matrix, weights *ppmi.Matrix, idToWord vocab.IDToWord, limit int) []PairStat {
	type entry struct {
		i, j vocab.WordID
		stat PairStat
	}
	var entries []entry

	for i := 0; i < counts.Size(); i++ {
		for j := i; j < counts.Size(); j++ {
			a, b := vocab.WordID(i), vocab.WordID(j)
			count := counts.At(a, b)
			if count == 0 {
				continue
			}
			stat := PairStat{
				A:     idToWord[a],
				B:     idToWord[b],
				Count: count,
			}
			if weights != nil {
				stat.Weight = weights.At(a, b)
			}
			entries = append(entries, entry{i: a, j: b, stat: stat})
		}
	}

	sort.Slice(entries, func(x, y int) bool {
		ex, ey := entries[x], entries[y]
		if ex.stat.Count != ey.stat.Count {
			return ex.stat.Count > ey.stat.Count
		}
		if ex.stat.Weight != ey.stat.Weight {
			return ex.stat.Weight > ey.stat.Weight
		}
		if ex.i != ey.i {
			return ex.i < ey.i
		}
		return ex.j < ey.j
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]PairStat, len(entries))
	for i, e := range entries {
		out[i] = e.stat
	}
	return out
}
