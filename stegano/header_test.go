package stegano
import (
	"errors"
	"math"
	"testing"
)

func TestHeaderRoundTrip( t *testing.T ) {
	lengths := []uint32{0, 1, 5, 255, 65535, math.MaxUint32}
	for _, length := range lengths {
		codeword, err := encodeHeader( length )
		if err != nil {
			t.Fatalf("Failed to encode header for %d: %v", length, err)
		}
		if len(codeword) != HeaderSize {
			t.Fatalf("Header codeword is %d bytes, expected %d", len(codeword), HeaderSize)
		}
		decoded, err := decodeHeader( codeword )
		if err != nil {
			t.Fatalf("Failed to decode header for %d: %v", length, err)
		}
		if decoded != length {
			t.Errorf("Header round trip spoiled the length: %d != %d", decoded, length)
		}
	}
}

func TestHeaderCorrectsTwoBytes( t *testing.T ) {
	codeword, err := encodeHeader( 1234 )
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}
	codeword[1] ^= 0xff
	codeword[6] ^= 0x5a
	decoded, err := decodeHeader( codeword )
	if err != nil {
		t.Fatalf("Failed to decode header with 2 corrupted bytes: %v", err)
	}
	if decoded != 1234 {
		t.Errorf("Header decoded to %d, expected 1234", decoded)
	}
}

func TestHeaderCorruptBeyondRepair( t *testing.T ) {
	codeword, err := encodeHeader( 1234 )
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}
	codeword[0] ^= 0xff
	codeword[3] ^= 0xa5
	codeword[5] ^= 0x3c
	if _, err = decodeHeader( codeword ); errors.Is( err, ErrHeaderCorrupt ) == false {
		t.Errorf("Expected ErrHeaderCorrupt, got %v", err)
	}
}
