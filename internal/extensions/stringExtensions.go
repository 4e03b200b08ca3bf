package extensions

// TruncateString cuts s to at most maxLen runes, marking the cut with "...".
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// TruncateStringStart keeps the end of s, which is the informative part of a path.
func TruncateStringStart(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[len(runes)-maxLen:])
	}

	return "..." + string(runes[len(runes)-(maxLen-3):])
}
