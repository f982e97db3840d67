package main

import (
	"testing"

	"wfc-chunk/internal/chunk"
)

func TestSweepCoversEverySeedOnce(t *testing.T) {
	cfg := chunk.Config{Size: 8, MaxTile: 3, Algorithm: "pcg"}
	results, err := sweep(cfg, -5, 40, 4)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != 40 {
		t.Fatalf("expected 40 results, got %d", len(results))
	}
	seen := map[int64]bool{}
	for _, r := range results {
		if seen[r.seed] {
			t.Fatalf("seed %d measured twice", r.seed)
		}
		seen[r.seed] = true
		if !r.repeatable {
			t.Fatalf("seed %d not repeatable", r.seed)
		}
		total := 0
		for _, n := range r.hist {
			total += n
		}
		if total != 64 {
			t.Fatalf("seed %d histogram covers %d cells, want 64", r.seed, total)
		}
		if r.hist[len(r.hist)-1] != 0 {
			t.Fatalf("seed %d has out-of-range tiles: %v", r.seed, r.hist)
		}
	}
	if !seen[-5] || !seen[34] {
		t.Fatalf("sweep range endpoints missing")
	}
}

func TestSweepRejectsBadConfig(t *testing.T) {
	if _, err := sweep(chunk.Config{Size: 0, MaxTile: 1, Algorithm: "mt19937"}, 0, 1, 1); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestMeasureMatchesGoldenSeed(t *testing.T) {
	a := chunk.NewDefault()
	b := chunk.NewDefault()
	r := measure(a, b, 42)
	want := []int{264, 272, 251, 246, 263, 0}
	for i, n := range want {
		if r.hist[i] != n {
			t.Fatalf("hist[%d]=%d want %d (%v)", i, r.hist[i], n, r.hist)
		}
	}
}
