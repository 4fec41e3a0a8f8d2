// Package report assembles explainable similarity reports for driver output.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/distsem/pkg/distsem/rank"
	"github.com/cognicore/distsem/pkg/distsem/stats"
)

// Builder constructs similarity reports with monotonic ULID ids.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is one answered similarity query, with enough context to explain
// where the ranking came from.
type Report struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	Weighting   string        `json:"weighting"`
	WindowSize  int           `json:"window_size"`
	GeneratedAt time.Time     `json:"generated_at"`
	Neighbors   []Neighbor    `json:"neighbors"`
	Corpus      stats.Summary `json:"corpus"`
}

// Neighbor is one ranked vocabulary word.
type Neighbor struct {
	Rank  int     `json:"rank"`
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Build creates a report from ranked results. An empty result list still
// produces a report; it records that the query matched nothing.
func (b *Builder) Build(query, weighting string, windowSize int, results []rank.Result, summary stats.Summary) Report {
	r := Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		Query:       query,
		Weighting:   weighting,
		WindowSize:  windowSize,
		GeneratedAt: time.Now().UTC(),
		Neighbors:   make([]Neighbor, 0, len(results)),
		Corpus:      summary,
	}

	for i, res := range results {
		r.Neighbors = append(r.Neighbors, Neighbor{
			Rank:  i + 1,
			Word:  res.Word,
			Score: res.Score,
		})
	}

	return r
}
