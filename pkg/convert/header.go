package convert

import "strings"

const (
	// LegacyOpen opens a legacy tag.
	LegacyOpen = "<%"
	// LegacyClose closes a legacy tag.
	LegacyClose = "%>"
)

// StripHeader removes a leading multi-line legacy block.
//
// A header starts on the first line of the document with an opening
// delimiter that is not closed on that same line, and runs through the
// line holding its matching closing delimiter. Complete tags inside the
// header are skipped while looking for that close; when the header holds
// an unbalanced opening fragment the first closing delimiter ends it.
// Only that first block is removed. A tag that opens and closes on line
// one is content, not a header. Documents without a terminated header are
// returned unchanged.
func StripHeader(text string) (string, bool) {
	if !strings.HasPrefix(text, LegacyOpen) {
		return text, false
	}
	firstEOL := strings.IndexByte(text, '\n')
	if firstEOL < 0 || strings.Contains(text[:firstEOL], LegacyClose) {
		return text, false
	}

	closeAt := matchingClose(text, firstEOL+1)
	if closeAt < 0 {
		// An unbalanced opening fragment inside the header
		closeAt = strings.Index(text[firstEOL+1:], LegacyClose)
		if closeAt < 0 {
			return text, false
		}
		closeAt += firstEOL + 1
	}
	eol := strings.IndexByte(text[closeAt:], '\n')
	if eol < 0 {
		return "", true
	}
	return text[closeAt+eol+1:], true
}

// matchingClose returns the offset of the closing delimiter that balances
// the header opened at the start of text, searching from pos, or -1.
func matchingClose(text string, pos int) int {
	depth := 1
	for pos < len(text) {
		open := strings.Index(text[pos:], LegacyOpen)
		closing := strings.Index(text[pos:], LegacyClose)
		if closing < 0 {
			return -1
		}
		if open >= 0 && open < closing {
			depth++
			pos += open + len(LegacyOpen)
			continue
		}
		depth--
		if depth == 0 {
			return pos + closing
		}
		pos += closing + len(LegacyClose)
	}
	return -1
}
