package util
import (
	"fmt"
)

/*
 * conversion between byte sequences and bit sequences.
 * bits travel MSB-first so the byte 0x80 becomes 1,0,0,0,0,0,0,0.
 */

// Bit is a single hidden bit, kept as its own type so bits are never
// mixed up with carrier channel values in arithmetic.
type Bit uint8

func BytesToBits( data []byte ) []Bit {
	bits := make( []Bit, 0, len(data) * 8 )
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append( bits, Bit( (b >> uint(i)) & 1 ) )
		}
	}
	return bits
}

// BitsToBytes packs bits back into bytes. Lengths are always computed in
// whole bytes by the callers, so a trailing partial group means a bug
// somewhere upstream and is reported instead of being truncated away.
func BitsToBytes( bits []Bit ) ([]byte, error) {
	if len(bits) % 8 != 0 {
		return nil, fmt.Errorf("Bit sequence of length %d is not a whole number of bytes", len(bits))
	}
	result := make( []byte, len(bits) / 8 )
	for i, bit := range bits {
		result[ i / 8 ] |= byte(bit) << uint( 7 - i % 8 )
	}
	return result, nil
}
