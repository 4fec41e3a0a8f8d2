package report

import (
	"testing"

	"github.com/cognicore/distsem/pkg/distsem/rank"
	"github.com/cognicore/distsem/pkg/distsem/stats"
)

func TestBuild(t *testing.T) {
	b := New()

	results := []rank.Result{
		{Word: "hello", Score: 0.7},
		{Word: "goodbye", Score: 0.5},
	}
	summary := stats.Summary{TokenCount: 8, VocabSize: 7, TotalMass: 14}

	r := b.Build("you", "counts", 1, results, summary)

	if r.ID == "" {
		t.Error("report id empty")
	}
	if r.Query != "you" || r.Weighting != "counts" || r.WindowSize != 1 {
		t.Errorf("report header = %+v", r)
	}
	if len(r.Neighbors) != 2 {
		t.Fatalf("neighbor count = %d, want 2", len(r.Neighbors))
	}
	if r.Neighbors[0].Rank != 1 || r.Neighbors[0].Word != "hello" {
		t.Errorf("first neighbor = %+v", r.Neighbors[0])
	}
	if r.Corpus.VocabSize != 7 {
		t.Errorf("corpus summary = %+v", r.Corpus)
	}
}

func TestBuildEmptyResults(t *testing.T) {
	b := New()

	r := b.Build("banana", "ppmi", 2, nil, stats.Summary{})
	if len(r.Neighbors) != 0 {
		t.Errorf("neighbors = %v, want none", r.Neighbors)
	}
	if r.ID == "" {
		t.Error("report id empty")
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	b := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := b.Build("you", "counts", 1, nil, stats.Summary{})
		if seen[r.ID] {
			t.Fatalf("duplicate report id %s", r.ID)
		}
		seen[r.ID] = true
	}
}
