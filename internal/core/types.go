package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a live-cell coordinate in simulation space. Coordinates are stored
// as floats so the render list can be handed to the blitter without
// per-frame conversion.
type Point struct {
	X float32
	Y float32
}
