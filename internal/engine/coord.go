package engine

// Coord addresses one board square. File runs a→h as 0→7; Rank runs
// from the top of the printed board down, so rank 8 of the diagram is
// Rank 0 and White's back rank is Rank 7.
type Coord struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}
