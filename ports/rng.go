package ports

// Chooser picks an index in [0, n). Narration uses it to select phrasing
// templates; tests pin it to get deterministic text.
type Chooser func(n int) int
