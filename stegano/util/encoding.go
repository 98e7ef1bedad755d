package util
import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrTritOverflow = errors.New("value does not fit into the trit width")
	ErrInvalidTrit = errors.New("trit out of range")
)

/*
 * transform data from/to binary form.
 * bits are ordered most significant first inside of every byte.
 */
func ToBits( data []byte ) []bool {
	result := make( []bool, 0, len(data) * 8 )
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			result = append( result, (b >> uint(i)) & 1 == 1 )
		}
	}
	return result
}

// inverse function. the last group of less than 8 bits is dropped.
func FromBits( stream []bool ) []byte {
	result := make( []byte, 0, len(stream) / 8 )
	for i := 0; i + 8 <= len(stream); i += 8 {
		b := byte(0)
		for _, bit := range stream[i:i+8] {
			b <<= 1
			if bit {
				b |= 1
			}
		}
		result = append( result, b )
	}
	return result
}

// value of a group of bits, most significant first.
func BitsValue( group []bool ) uint8 {
	v := uint8(0)
	for _, bit := range group {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

/*
 * transform a byte into base-3 digits, most significant first,
 * left padded with zeros up to width. values which need more digits
 * than width are rejected, never truncated.
 */
func ToTrits( b byte, width int ) ([]uint8, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid trit width %d", width)
	}
	trits := make( []uint8, width )
	v := uint16(b)
	for i := width - 1; i >= 0 && v > 0; i-- {
		trits[i] = uint8( v % 3 )
		v /= 3
	}
	if v != 0 {
		return nil, fmt.Errorf("%w: %d needs more than %d trits", ErrTritOverflow, b, width)
	}
	return trits, nil
}

// inverse function: base-3 digits, most significant first.
func FromTrits( trits []uint8 ) (uint64, error) {
	result := uint64(0)
	for _, t := range trits {
		if t > 2 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidTrit, t)
		}
		hi, lo := bits.Mul64( result, 3 )
		if hi != 0 {
			return 0, ErrTritOverflow
		}
		sum, carry := bits.Add64( lo, uint64(t), 0 )
		if carry != 0 {
			return 0, ErrTritOverflow
		}
		result = sum
	}
	return result, nil
}

// how many trits are required to hold any byte value
func MaxTritWidth() int {
	width := 0
	for v := 255; v > 0; v /= 3 {
		width++
	}
	return width
}
