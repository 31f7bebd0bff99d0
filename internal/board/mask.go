package board

// MaskIdentifier partially redacts a username for public display:
// identifiers of 4 or fewer characters pass through unchanged, longer ones
// keep only the first and last two characters around a literal "***".
// Lengths are counted in code points, not bytes.
func MaskIdentifier(id string) string {
	runes := []rune(id)
	if len(runes) <= 4 {
		return id
	}
	return string(runes[:2]) + "***" + string(runes[len(runes)-2:])
}
