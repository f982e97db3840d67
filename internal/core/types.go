package core

// Size describes the dimensions of a tile grid.
type Size struct {
	W int
	H int
}

// Generator defines the contract the viewer, exporters and host bindings rely
// on: a seeded grid filler exposing its tiles in row-major order.
type Generator interface {
	Name() string
	Size() Size
	Generate(seed int64)
	Cells() []int32
	FlatGrid() []int32
}
