package stegano
import (
	"encoding/binary"

	"github.com/tirthikdurgam/GhostTag/ecc"
)

/*
 * the header stores the byte length of the encoded payload so the
 * extractor knows how many bits to read. it is protected by its own
 * fixed redundancy, independent of the engine's configured one, so its
 * size never varies: 4 length bytes + 4 parity bytes = 8 bytes always.
 */
const (
	HeaderRedundancy = 4

	// HeaderSize is the constant codeword size in bytes.
	HeaderSize = 8

	// HeaderBits is the number of carrier slots the header occupies.
	HeaderBits = HeaderSize * 8
)

func encodeHeader( payloadLen uint32 ) ([]byte, error) {
	length := make( []byte, 4 )
	binary.BigEndian.PutUint32( length, payloadLen )
	return ecc.Encode( length, HeaderRedundancy )
}

func decodeHeader( codeword []byte ) (uint32, error) {
	length, err := ecc.Decode( codeword, HeaderRedundancy )
	if err != nil {
		return 0, ErrHeaderCorrupt
	}
	return binary.BigEndian.Uint32( length ), nil
}
