package stegano
import (
	"fmt"
	"math"

	"github.com/tirthikdurgam/GhostTag/ecc"
	"github.com/tirthikdurgam/GhostTag/stegano/util"
)

/*
 * the embed/extract engine.
 *
 * a message is wrapped in error-correcting parity, prefixed with a
 * fixed-size length header and written bit by bit into the least
 * significant bits of the carrier's channel values. the write order is
 * a pseudorandom permutation of all slots keyed by the seed, so without
 * the seed the payload is indistinguishable from sensor noise in the
 * LSB plane. extraction replays the same permutation.
 */

// Engine holds the immutable embed/extract configuration. A single
// Engine is safe for concurrent use on independent carriers: both
// operations are pure over the configuration and recompute their
// permutation per call.
type Engine struct {
	seed		int64
	redundancy	int
}

// New creates an engine from the shared secret seed and the payload
// redundancy (parity bytes per block; higher survives more corruption
// but eats capacity).
func New( redundancy int, seed int64 ) (*Engine, error) {
	if redundancy < 1 || redundancy > ecc.MaxRedundancy {
		return nil, fmt.Errorf("Invalid redundancy %d, expected 1..%d", redundancy, ecc.MaxRedundancy)
	}
	return &Engine{
		seed:		seed,
		redundancy:	redundancy,
	}, nil
}

func( e *Engine ) Redundancy() int {
	return e.redundancy
}

// Embed hides message inside carrier's LSBs and returns the carrier.
// The carrier is mutated in place; every touched slot changes by at
// most 1 and slots beyond the bitstream stay byte-identical. The caller
// must persist the result losslessly.
func( e *Engine ) Embed( carrier []uint8, message string ) ([]uint8, error) {

	payload, err := encodePayload( []byte(message), e.redundancy )
	if err != nil {
		return nil, err
	}
	if len(payload) > math.MaxUint32 {
		// the length field is 32 bits; no real carrier comes close,
		// but the cast must not wrap silently
		return nil, &CapacityError{ Needed: HeaderBits + len(payload) * 8, Available: len(carrier) }
	}
	header, err := encodeHeader( uint32(len(payload)) )
	if err != nil {
		return nil, err
	}

	stream := make( []byte, 0, len(header) + len(payload) )
	stream = append( stream, header... )
	stream = append( stream, payload... )
	bits := util.BytesToBits( stream )

	if len(bits) > len(carrier) {
		return nil, &CapacityError{ Needed: len(bits), Available: len(carrier) }
	}

	indices := util.Permute( e.seed, len(carrier) )
	for i, bit := range bits {
		idx := indices[i]
		carrier[idx] = (carrier[idx] & 0xfe) | uint8(bit)
	}
	return carrier, nil
}

// Extract recovers a message hidden by Embed under the same seed and
// redundancy. It never panics on arbitrary input: any failure is one of
// ErrHeaderCorrupt, ErrInvalidLength, ErrPayloadCorrupt or
// ErrInvalidEncoding.
func( e *Engine ) Extract( carrier []uint8 ) (string, error) {

	if len(carrier) < HeaderBits {
		// not even room for a header: nothing can be hidden here
		return "", ErrHeaderCorrupt
	}
	indices := util.Permute( e.seed, len(carrier) )

	headerBits := make( []util.Bit, HeaderBits )
	for i := range headerBits {
		headerBits[i] = util.Bit( carrier[ indices[i] ] & 1 )
	}
	headerBytes, err := util.BitsToBytes( headerBits )
	if err != nil {
		return "", err
	}
	payloadLen, err := decodeHeader( headerBytes )
	if err != nil {
		return "", err
	}

	totalBits := int64(HeaderBits) + int64(payloadLen) * 8
	if totalBits > int64(len(carrier)) {
		return "", ErrInvalidLength
	}

	payloadBits := make( []util.Bit, int(payloadLen) * 8 )
	for i := range payloadBits {
		payloadBits[i] = util.Bit( carrier[ indices[ HeaderBits + i ] ] & 1 )
	}
	payloadBytes, err := util.BitsToBytes( payloadBits )
	if err != nil {
		return "", err
	}
	return decodePayload( payloadBytes, e.redundancy )
}
