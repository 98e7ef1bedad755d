package text

/*
 * whitespace characters we know about. only Space and the two line
 * terminators are used by the codecs now, the rest are kept for patterns
 * which are not implemented yet.
 */
const (
	Space = ' '
	Tab = '\t'
	Newline = '\n'
	CarriageReturn = '\r'
	NoBreakSpace = '\u00a0'
	EnSpace = '\u2002'
	EmSpace = '\u2003'
	ZeroWidthSpace = '\u200b'

	LF = "\n"
	CRLF = "\r\n"
)

// the full catalog, in declaration order.
var Whitespaces = []rune{
	Space,
	Tab,
	Newline,
	CarriageReturn,
	NoBreakSpace,
	EnSpace,
	EmSpace,
	ZeroWidthSpace,
}

const (
	DefaultMarker = "text"
	BitsPerLine = 5

	// markdown table alignments
	AlignLeft = uint8(0)
	AlignCenter = uint8(1)
	AlignRight = uint8(2)

	NarrowTritWidth = 3
	WideTritWidth = 6
)
