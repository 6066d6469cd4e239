package util

import (
	"fmt"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

func ContainsI(str string, substr string) bool {
	return strings.Contains(
		strings.ToLower(str),
		strings.ToLower(substr),
	)
}

// return prefix of string at most width and actual width.
// ASCII char has 1 width. CJK char has 2 width
func StringPrefixInWidth(str string, width int64) (string, int64) {
	strWidth := int64(0)
	sb := &strings.Builder{}
	for _, char := range str {
		runeWidth := int64(runewidth.RuneWidth(char))
		if strWidth+runeWidth > width {
			break
		}
		sb.WriteRune(char)
		strWidth += runeWidth
	}
	return sb.String(), strWidth
}

// Print str truncated or padded to exactly width columns.
func PrintStringInWidth(output io.Writer, str string, width int64, padRight bool) {
	pstr, strWidth := StringPrefixInWidth(str, width)
	if padRight {
		pstr += strings.Repeat(" ", int(width-strWidth))
	} else {
		pstr = strings.Repeat(" ", int(width-strWidth)) + pstr
	}
	fmt.Fprint(output, pstr)
}
