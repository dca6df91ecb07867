package request

// CreatePuzzleRequest is the request body for starting a puzzle
type CreatePuzzleRequest struct {
	CategoryID string `json:"category_id"`
}

// PointerRequest is one raw pointer event against a rendered grid.
// X and Y are relative to the grid's top-left corner.
type PointerRequest struct {
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	CellSize float64 `json:"cell_size"`
	Gap      float64 `json:"gap"`
	Padding  float64 `json:"padding"`
}

// GuessRequest is the request body for a Wordle guess
type GuessRequest struct {
	Word string `json:"word"`
}
