package core

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}
