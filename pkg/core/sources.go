package core

import "sort"

// Names of the built-in PRNG algorithms.
const (
	AlgorithmMT19937 = "mt19937"
	AlgorithmPCG     = "pcg"
)

// SourceFactory constructs a source keyed exactly by seed.
type SourceFactory func(seed int64) Source32

var sources = map[string]SourceFactory{}

// RegisterSource adds a source factory under the provided name.
func RegisterSource(name string, f SourceFactory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// LookupSource returns the factory registered under name.
func LookupSource(name string) (SourceFactory, bool) {
	f, ok := sources[name]
	return f, ok
}

// SourceNames lists the registered algorithm names in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterSource(AlgorithmMT19937, func(seed int64) Source32 { return NewMT19937(seed) })
	RegisterSource(AlgorithmPCG, func(seed int64) Source32 { return NewPCGSource(seed) })
}
