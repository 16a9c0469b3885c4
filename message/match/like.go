package match

// Like performs SQL LIKE pattern matching.
// % matches any sequence of characters.
// _ matches a single character.
func Like(pattern, value string) bool {
	pi, vi := 0, 0
	pLen, vLen := len(pattern), len(value)
	starIdx, matchIdx := -1, 0

	for vi < vLen {
		switch {
		case pi < pLen && (pattern[pi] == '_' || pattern[pi] == value[vi]):
			pi++
			vi++
		case pi < pLen && pattern[pi] == '%':
			starIdx = pi
			matchIdx = vi
			pi++
		case starIdx != -1:
			pi = starIdx + 1
			matchIdx++
			vi = matchIdx
		default:
			return false
		}
	}

	for pi < pLen && pattern[pi] == '%' {
		pi++
	}
	return pi == pLen
}

// LikeAny returns true if value matches any of the patterns.
func LikeAny(patterns []string, value string) bool {
	for _, p := range patterns {
		if Like(p, value) {
			return true
		}
	}
	return false
}
