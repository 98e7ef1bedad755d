package text
import (
	"errors"
	"fmt"
	"unicode/utf8"
)

/*
 * Codec hides a text message inside the layout of a carrier text.
 * Decode(Encode(m)) must give m back for every m accepted by Encode.
 * Codecs keep no state between calls and are safe for concurrent use.
 */
type Codec interface {
	Name() string
	Description() string	// one line summary of the pattern
	Sample() string		// a message accepted by Encode, used for examples
	Encode( message string ) (string, error)
	Decode( carrier string ) (string, error)
}

var (
	// carrier does not have the shape the codec expects
	ErrInvalidCarrier = errors.New("invalid carrier format")
	// recovered bytes are not valid UTF-8
	ErrInvalidByteSequence = errors.New("invalid byte sequence")
	// message passed to Encode is not valid UTF-8
	ErrInvalidMessage = errors.New("message is not valid UTF-8 text")
	// message is text but the codec can not represent it
	ErrUnencodable = errors.New("message can not be encoded")
)

func checkMessage( message string ) error {
	if utf8.ValidString( message ) == false {
		return ErrInvalidMessage
	}
	return nil
}

func bytesToMessage( data []byte ) (string, error) {
	if utf8.Valid( data ) == false {
		return "", fmt.Errorf("%w: recovered %d bytes are not UTF-8", ErrInvalidByteSequence, len(data))
	}
	return string(data), nil
}
