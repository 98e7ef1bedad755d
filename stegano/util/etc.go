package util
import (
	"strings"
	"golang.org/x/text/unicode/norm"
)

/*
 * compatibility folding for hand-edited carriers: fullwidth '｜' and '：'
 * become '|' and ':'. must never be applied to whitespace carriers, NFKC
 * turns no-break spaces into ordinary ones.
 */
func FoldPunctuation( s string ) string {
	return norm.NFKC.String( s )
}

// split text into lines, every line keeps its terminator.
func SplitLinesKeepEnds( s string ) []string {
	lines := []string{}
	for len(s) > 0 {
		idx := strings.IndexByte( s, '\n' )
		if idx < 0 {
			lines = append( lines, s )
			break
		}
		lines = append( lines, s[:idx+1] )
		s = s[idx+1:]
	}
	return lines
}
