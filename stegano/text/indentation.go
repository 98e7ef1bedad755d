package text
import (
	"fmt"
	"strings"

	"pbridge/stegano/util"
)

/*
 * hides data in the layout of plain lines. every line carries 5 bits:
 *	0-3 spaces before the filler	-> 2 bits
 *	0-3 spaces after the filler	-> 2 bits
 *	'\n' or '\r\n' terminator	-> 1 bit
 * e.g. "HI" = 01001000 01001001 becomes
 *	" text\r\n"	(01001)
 *	"text\r\n"	(00001)
 *	"text  \n"	(00100)
 *	"  text\n"	(1 + zero padding)
 */
type IndentationCodec struct {
	filler	[]string
}

func NewIndentationCodec( filler ...string ) (*IndentationCodec, error) {
	if len(filler) == 0 {
		filler = []string{ DefaultMarker }
	}
	lines := make( []string, 0, len(filler) )
	for i, line := range filler {
		if line == "" {
			return nil, fmt.Errorf("filler line %d is empty", i)
		}
		if strings.ContainsAny( line, "\r\n" ) {
			return nil, fmt.Errorf("filler line %d contains a line break", i)
		}
		if line[0] == Space || line[len(line)-1] == Space {
			return nil, fmt.Errorf("filler line %d starts or ends with a space", i)
		}
		lines = append( lines, line )
	}
	return &IndentationCodec{ lines }, nil
}

func(c *IndentationCodec) Name() string {
	return "indentation"
}

func(c *IndentationCodec) Description() string {
	return "Encodes messages using indentation patterns: 0-3 leading spaces = 2 bits, 0-3 trailing spaces = 2 bits, LF or CRLF line ending = 1 bit"
}

func(c *IndentationCodec) Sample() string {
	return "test"
}

func(c *IndentationCodec) Encode( message string ) (string, error) {
	if err := checkMessage( message ); err != nil {
		return "", err
	}
	stream := util.ToBits( []byte(message) )

	var sb strings.Builder
	group := make( []bool, BitsPerLine )
	line := 0
	for i := 0; i < len(stream); i += BitsPerLine {
		// the last group is padded with zeros
		clear( group )
		copy( group, stream[i:min( i + BitsPerLine, len(stream) )] )

		leading := int( util.BitsValue( group[0:2] ) )
		trailing := int( util.BitsValue( group[2:4] ) )

		sb.WriteString( strings.Repeat( string(Space), leading ) )
		sb.WriteString( c.filler[ line % len(c.filler) ] )
		sb.WriteString( strings.Repeat( string(Space), trailing ) )
		if group[4] {
			sb.WriteString( CRLF )
		} else {
			sb.WriteString( LF )
		}
		line++
	}
	return sb.String(), nil
}

/*
 * only the two low bits of every space count matter, so 4 spaces read
 * exactly like 0 spaces. carriers edited by hand decode without errors.
 */
func(c *IndentationCodec) Decode( carrier string ) (string, error) {
	if carrier == "" {
		return "", nil
	}
	if strings.Contains( carrier, LF ) == false {
		return "", fmt.Errorf("%w: no lines found", ErrInvalidCarrier)
	}

	lines := util.SplitLinesKeepEnds( carrier )
	stream := make( []bool, 0, len(lines) * BitsPerLine )
	for i, line := range lines {
		if strings.HasSuffix( line, LF ) == false {
			return "", fmt.Errorf("%w: line %d is not terminated", ErrInvalidCarrier, i + 1)
		}
		crlf := strings.HasSuffix( line, CRLF )
		body := strings.TrimSuffix( line, LF )
		if crlf {
			body = strings.TrimSuffix( line, CRLF )
		}
		leading := len(body) - len( strings.TrimLeft( body, string(Space) ) )
		trailing := len(body) - len( strings.TrimRight( body, string(Space) ) )

		stream = append( stream,
			leading & 2 != 0,
			leading & 1 != 0,
			trailing & 2 != 0,
			trailing & 1 != 0,
			crlf,
		)
	}
	// padding bits never reach a full byte
	return bytesToMessage( util.FromBits( stream ) )
}
