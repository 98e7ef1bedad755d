package text
import (
	"errors"
	"strings"
	"testing"

	"pbridge/stegano/util"
)

func newTable( t *testing.T, width int ) *TableCodec {
	t.Helper()
	c, err := NewTableCodec( width )
	if err != nil {
		t.Fatalf("Failed to create codec: %v", err)
	}
	return c
}

func TestTableByteFive( t *testing.T ) {
	c := newTable( t, NarrowTritWidth )
	enc, err := c.Encode("\x05")
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	expected := "| Col1 | Col2 | Col3 |\n|:---|:---:|---:|"
	if enc != expected {
		t.Errorf("Invalid carrier: %q != %q", enc, expected)
	}
	trits, err := ParseSeparator("|:---|:---:|---:|")
	if err != nil {
		t.Fatalf("Failed to parse separator: %v", err)
	}
	if len(trits) != 3 || trits[0] != AlignLeft || trits[1] != AlignCenter || trits[2] != AlignRight {
		t.Errorf("Invalid alignments: %v", trits)
	}
	dec, err := c.Decode( enc )
	if err != nil || dec != "\x05" {
		t.Errorf("Steganography spoiled the data: %q, %v", dec, err)
	}
}

func TestTableRoundTrip( t *testing.T ) {
	bounded := []byte{}
	for b := 0; b <= 26; b++ {
		bounded = append( bounded, byte(b) )
	}
	narrow := []string{
		"",
		"\x00",
		"\x1a\x1a",
		string(bounded),
	}
	wide := append( []string{}, narrow... )
	wide = append( wide,
		"HI",
		"test",
		"Hello, 世界",
		"emoji 🙂",
		strings.Repeat("~", 300),
	)

	tests := map[int][]string{
		NarrowTritWidth: narrow,
		WideTritWidth: wide,
	}
	for width, messages := range tests {
		c := newTable( t, width )
		for _, msg := range messages {
			enc, err := c.Encode( msg )
			if err != nil {
				t.Errorf("[%s] failed to encode %q: %v", c.Name(), msg, err)
				continue
			}
			dec, err := c.Decode( enc )
			if err != nil {
				t.Errorf("[%s] failed to decode %q: %v", c.Name(), msg, err)
			} else if dec != msg {
				t.Errorf("[%s] steganography spoiled the data. %q != %q", c.Name(), msg, dec)
			}
		}
	}
}

func TestTableEmpty( t *testing.T ) {
	c := newTable( t, NarrowTritWidth )
	enc, err := c.Encode("")
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if enc != "|  |\n|" {
		t.Errorf("Invalid empty carrier: %q", enc)
	}
	for _, carrier := range []string{ enc, "| Col1 |\n|\n", "| Col1 |\n\n" } {
		dec, err := c.Decode( carrier )
		if err != nil || dec != "" {
			t.Errorf("Empty separator must give an empty message: %q -> %q, %v", carrier, dec, err)
		}
	}
}

func TestTableNarrowLimit( t *testing.T ) {
	c := newTable( t, NarrowTritWidth )
	for _, msg := range []string{ "H", "\x1b", "ok", "é" } {
		if _, err := c.Encode( msg ); errors.Is( err, ErrUnencodable ) == false {
			t.Errorf("%q must not fit into 3 trits per byte, got %v", msg, err)
		}
	}
	if _, err := c.Encode("\xff"); errors.Is( err, ErrInvalidMessage ) == false {
		t.Errorf("Invalid UTF-8 message must be rejected, got %v", err)
	}
}

func TestTableSeparatorVariants( t *testing.T ) {
	c := newTable( t, NarrowTritWidth )
	tests := map[string]string{
		"|:---|:---:|---:|": "\x05",
		"| :--- | :---: | ---: |": "\x05",
		"|:-|:-:|-:|": "\x05",
		"|---|---|---|": "\x1a",
		"|:---|:---|---|\r": "\x02",
		"  |:---|:---:|---:|  ": "\x05",
		"｜：---｜：---：｜---：｜": "\x05",
		"|:---|:---:|---:|:---|": "\x05",
	}
	for separator, expected := range tests {
		dec, err := c.Decode( "| a | b | c |\n" + separator )
		if err != nil {
			t.Errorf("Failed to decode %q: %v", separator, err)
		} else if dec != expected {
			t.Errorf("Invalid message for %q: %q != %q", separator, dec, expected)
		}
	}
}

func TestTableInvalidCarrier( t *testing.T ) {
	narrow := newTable( t, NarrowTritWidth )
	wide := newTable( t, WideTritWidth )
	tests := []string{
		"",
		"| Col1 | Col2 | Col3 |",
		"| Col1 | Col2 | Col3 |\n:---|:---:|---:",
		"| Col1 |\n|abc|",
		"| Col1 |\n|:|",
		"| Col1 |\n|:---|  |",
	}
	for _, carrier := range tests {
		if _, err := narrow.Decode( carrier ); errors.Is( err, ErrInvalidCarrier ) == false {
			t.Errorf("Carrier %q must be rejected as invalid, got %v", carrier, err)
		}
	}
	// six right aligned columns are 728, not a byte
	if _, err := wide.Decode("| x |\n|---:|---:|---:|---:|---:|---:|"); errors.Is( err, ErrInvalidCarrier ) == false {
		t.Errorf("Values above 255 must be rejected, got %v", err)
	}
}

func TestTableInvalidBytes( t *testing.T ) {
	c := newTable( t, WideTritWidth )
	trits, err := util.ToTrits( 0x80, WideTritWidth )
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	separator := "|"
	for _, tr := range trits {
		separator += []string{ ":---|", ":---:|", "---:|" }[tr]
	}
	if _, err := c.Decode( "| x |\n" + separator ); errors.Is( err, ErrInvalidByteSequence ) == false {
		t.Errorf("Lone continuation byte must be rejected, got %v", err)
	}
}

func TestTableCodecNames( t *testing.T ) {
	if _, err := NewTableCodec( 0 ); err == nil {
		t.Errorf("Zero width must be rejected")
	}
	if _, err := NewTableCodec( 7 ); err == nil {
		t.Errorf("Width 7 must be rejected")
	}
	names := map[int]string{ 3: "markdown", 6: "markdown-wide", 5: "markdown-5" }
	for width, name := range names {
		c := newTable( t, width )
		if c.Name() != name {
			t.Errorf("Invalid name for width %d: %s", width, c.Name())
		}
		if _, err := c.Encode( c.Sample() ); err != nil {
			t.Errorf("Sample of %s must be encodable: %v", name, err)
		}
	}
	if strings.Contains( newTable( t, 3 ).Description(), "0-26" ) == false {
		t.Errorf("Narrow description must mention the byte limit")
	}
}
