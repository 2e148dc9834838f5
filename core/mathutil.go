package core

// PositiveMod returns n mod d in [0, d) for any n and positive d.
// Go's % keeps the sign of the dividend.
func PositiveMod(n, d int) int {
	return ((n % d) + d) % d
}
