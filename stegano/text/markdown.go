package text
import (
	"fmt"
	"strconv"
	"strings"

	"pbridge/stegano/util"
)

/*
 * hides data in the alignments of markdown table columns:
 *	":---"	left	-> 0
 *	":---:"	center	-> 1
 *	"---:"	right	-> 2
 * every byte becomes `width` trits, most significant first. byte 5 with the
 * narrow width is [0 1 2]:
 *	| Col1 | Col2 | Col3 |
 *	|:---|:---:|---:|
 * the narrow width (3) can only hold bytes 0-26, larger ones are rejected
 * by Encode. the wide width (6) holds any byte.
 */
type TableCodec struct {
	width	int
}

func NewTableCodec( width int ) (*TableCodec, error) {
	if width < 1 || width > util.MaxTritWidth() {
		return nil, fmt.Errorf("trit width must be in range 1..%d, got %d", util.MaxTritWidth(), width)
	}
	return &TableCodec{ width }, nil
}

func(c *TableCodec) Width() int {
	return c.width
}

func(c *TableCodec) Name() string {
	switch c.width {
	case NarrowTritWidth:
		return "markdown"
	case WideTritWidth:
		return "markdown-wide"
	}
	return "markdown-" + strconv.Itoa( c.width )
}

func(c *TableCodec) Description() string {
	limit := "bytes 0-255"
	if c.width < util.MaxTritWidth() {
		limit = fmt.Sprintf("bytes 0-%d only", maxValue( c.width ))
	}
	return fmt.Sprintf("Encodes messages using markdown table alignments: left = 0, center = 1, right = 2; %d trits per byte, %s",
		c.width, limit)
}

func(c *TableCodec) Sample() string {
	if c.width < util.MaxTritWidth() {
		return "\x05\x0b\x1a"
	}
	return "test"
}

func(c *TableCodec) Encode( message string ) (string, error) {
	if err := checkMessage( message ); err != nil {
		return "", err
	}
	trits := make( []uint8, 0, len(message) * c.width )
	for i := 0; i < len(message); i++ {
		t, err := util.ToTrits( message[i], c.width )
		if err != nil {
			return "", fmt.Errorf("%w: byte %d: %v", ErrUnencodable, i, err)
		}
		trits = append( trits, t... )
	}

	labels := make( []string, len(trits) )
	var separator strings.Builder
	separator.WriteString("|")
	for i, t := range trits {
		labels[i] = "Col" + strconv.Itoa( i + 1 )
		switch t {
		case AlignLeft:
			separator.WriteString(":---|")
		case AlignCenter:
			separator.WriteString(":---:|")
		default:
			separator.WriteString("---:|")
		}
	}
	header := "| " + strings.Join( labels, " | " ) + " |"
	return header + LF + separator.String(), nil
}

func(c *TableCodec) Decode( carrier string ) (string, error) {
	lines := util.SplitLinesKeepEnds( carrier )
	if len(lines) < 2 {
		return "", fmt.Errorf("%w: separator row not found", ErrInvalidCarrier)
	}
	alignments, err := ParseSeparator( lines[1] )
	if err != nil {
		return "", err
	}

	data := make( []byte, 0, len(alignments) / c.width )
	for i := 0; i + c.width <= len(alignments); i += c.width {
		v, err := util.FromTrits( alignments[i:i+c.width] )
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidCarrier, err)
		}
		if v > 255 {
			return "", fmt.Errorf("%w: column group %d holds %d which is not a byte",
				ErrInvalidCarrier, i / c.width + 1, v)
		}
		data = append( data, byte(v) )
	}
	return bytesToMessage( data )
}

/*
 * reads alignments from a separator row like "|:---|:---:|---:|". an empty
 * row is a table without columns.
 * a colon on both sides is center, on the left only is left, anything
 * else is right.
 */
func ParseSeparator( row string ) ([]uint8, error) {
	row = strings.TrimSpace( util.FoldPunctuation( strings.TrimRight( row, CRLF ) ) )
	if row == "" {
		// a table without columns
		return []uint8{}, nil
	}
	if strings.HasPrefix( row, "|" ) == false || strings.HasSuffix( row, "|" ) == false {
		return nil, fmt.Errorf("%w: separator row must start and end with '|'", ErrInvalidCarrier)
	}
	cells := strings.Split( row, "|" )
	cells = cells[1:len(cells)-1]

	result := make( []uint8, 0, len(cells) )
	for i, cell := range cells {
		cell = strings.Trim( cell, " \t" )
		if strings.Trim( cell, "-:" ) != "" || strings.Contains( cell, "-" ) == false {
			return nil, fmt.Errorf("%w: column %d has invalid separator %q", ErrInvalidCarrier, i + 1, cell)
		}
		left := strings.HasPrefix( cell, ":" )
		right := strings.HasSuffix( cell, ":" )
		switch {
		case left && right:
			result = append( result, AlignCenter )
		case left:
			result = append( result, AlignLeft )
		default:
			result = append( result, AlignRight )
		}
	}
	return result, nil
}

// the largest value `width` trits can hold
func maxValue( width int ) int {
	v := 1
	for i := 0; i < width; i++ {
		v *= 3
	}
	return v - 1
}
