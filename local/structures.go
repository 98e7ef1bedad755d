package local
import (
	"pbridge/stegano/text"
)

const (
	DefaultEncoderType = "indentation"
)

type EncodeRequest struct {
	Message		string		`json:"message"`
	EncoderType	string		`json:"encoder_type"`	// name of the pattern, "indentation" if empty
	Options		map[string]any	`json:"options"`	// accepted for compatibility, unused
}

type DecodeRequest struct {
	Content		string		`json:"content"`	// carrier text
	EncoderType	string		`json:"encoder_type"`
	Options		map[string]any	`json:"options"`
}

type InspectRequest struct {
	Content		string		`json:"content"`
}

type EncodeResponse struct {
	Encoded			string		`json:"encoded"`
	PatternDescription	string		`json:"pattern_description"`
	Errors			[]string	`json:"errors"`
	ErrorKind		string		`json:"error_kind,omitempty"`
}

type DecodeResponse struct {
	Decoded		string		`json:"decoded"`
	Confidence	*float64	`json:"confidence,omitempty"`	// only set when decoding succeeded
	Errors		[]string	`json:"errors"`
	ErrorKind	string		`json:"error_kind,omitempty"`
}

type InspectResponse struct {
	text.TableInfo
	Errors		[]string	`json:"errors"`
}

// error kinds reported to clients
const (
	KindBadRequest = "bad_request"
	KindUnknownCodec = "unknown_codec"
	KindInvalidCarrier = "invalid_carrier"
	KindInvalidByteSequence = "invalid_byte_sequence"
	KindInvalidMessage = "invalid_message"
	KindUnencodable = "unencodable"
	KindTooLarge = "too_large"
)
