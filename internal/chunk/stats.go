package chunk

// Histogram counts how often each tile in [0, maxTile] occurs. The final
// bucket, at index maxTile+1, collects sentinels and out-of-range values.
func Histogram(flat []int32, maxTile int32) []int {
	if maxTile < 0 {
		maxTile = 0
	}
	hist := make([]int, int(maxTile)+2)
	overflow := len(hist) - 1
	for _, v := range flat {
		if v < 0 || v > maxTile {
			hist[overflow]++
			continue
		}
		hist[v]++
	}
	return hist
}

// ChiSquare returns Pearson's statistic for the tile buckets of hist (the
// overflow bucket excluded) against a uniform expectation.
func ChiSquare(hist []int) float64 {
	if len(hist) < 2 {
		return 0
	}
	buckets := hist[:len(hist)-1]
	total := 0
	for _, n := range buckets {
		total += n
	}
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(buckets))
	var stat float64
	for _, n := range buckets {
		d := float64(n) - expected
		stat += d * d / expected
	}
	return stat
}
