// Package distsem builds distributional-semantics models from raw text and
// answers word-relatedness queries against them. The pipeline runs in four
// stages: vocabulary construction, windowed co-occurrence counting, optional
// PPMI reweighting, and cosine-similarity ranking.
package distsem

import (
	"fmt"

	"github.com/cognicore/distsem/pkg/distsem/cooc"
	"github.com/cognicore/distsem/pkg/distsem/internalerr"
	"github.com/cognicore/distsem/pkg/distsem/ppmi"
	"github.com/cognicore/distsem/pkg/distsem/rank"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

// Weighting selects which matrix similarity queries run against.
type Weighting string

const (
	// WeightingCounts ranks over raw co-occurrence counts.
	WeightingCounts Weighting = "counts"
	// WeightingPPMI ranks over PPMI weights.
	WeightingPPMI Weighting = "ppmi"
)

// Options configures model construction.
type Options struct {
	WindowSize int
	Weighting  Weighting
}

// Model is an immutable distributional model of one text.
type Model struct {
	corpus    vocab.Corpus
	wordToID  vocab.WordToID
	idToWord  vocab.IDToWord
	counts    *cooc.Matrix
	weights   *ppmi.Matrix
	weighting Weighting
}

// Build runs the pipeline over text. The count matrix is always built; the
// PPMI matrix is built only when opts.Weighting selects it, since the
// transform rejects degenerate inputs (zero mass) that raw counts tolerate.
func Build(text string, opts Options) (*Model, error) {
	if opts.Weighting == "" {
		opts.Weighting = WeightingCounts
	}
	if opts.Weighting != WeightingCounts && opts.Weighting != WeightingPPMI {
		return nil, fmt.Errorf("weighting %q: %w", opts.Weighting, internalerr.ErrInvalidInput)
	}

	corpus, wordToID, idToWord := vocab.Build(text)

	counts, err := cooc.Build(corpus, opts.WindowSize)
	if err != nil {
		return nil, err
	}

	m := &Model{
		corpus:    corpus,
		wordToID:  wordToID,
		idToWord:  idToWord,
		counts:    counts,
		weighting: opts.Weighting,
	}

	if opts.Weighting == WeightingPPMI {
		weights, err := ppmi.Transform(counts)
		if err != nil {
			return nil, err
		}
		m.weights = weights
	}

	return m, nil
}

// MostSimilar ranks vocabulary words against query over the model's selected
// matrix. topK <= 0 returns the full ranking.
func (m *Model) MostSimilar(query string, topK int) []rank.Result {
	var matrix rank.Matrix = m.counts
	if m.weighting == WeightingPPMI {
		matrix = m.weights
	}

	results := rank.MostSimilar(query, m.wordToID, m.idToWord, matrix)
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Corpus returns the token-id sequence of the input text.
func (m *Model) Corpus() vocab.Corpus { return m.corpus }

// VocabSize returns the number of distinct tokens.
func (m *Model) VocabSize() int { return m.wordToID.Size() }

// WordToID returns the token-to-id mapping.
func (m *Model) WordToID() vocab.WordToID { return m.wordToID }

// IDToWord returns the id-to-token mapping.
func (m *Model) IDToWord() vocab.IDToWord { return m.idToWord }

// Counts returns the co-occurrence count matrix.
func (m *Model) Counts() *cooc.Matrix { return m.counts }

// Weights returns the PPMI matrix, or nil when the model was built over raw
// counts.
func (m *Model) Weights() *ppmi.Matrix { return m.weights }
