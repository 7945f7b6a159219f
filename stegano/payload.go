package stegano
import (
	"unicode/utf8"

	"github.com/tirthikdurgam/GhostTag/ecc"
)

func encodePayload( message []byte, redundancy int ) ([]byte, error) {
	return ecc.Encode( message, redundancy )
}

// decodePayload repairs and unwraps the payload codeword. Correction
// failure and garbage text are reported as distinct kinds: the former
// means the data is gone, the latter that something non-textual (or a
// wrong-seed read) came back whole.
func decodePayload( codeword []byte, redundancy int ) (string, error) {
	message, err := ecc.Decode( codeword, redundancy )
	if err != nil {
		return "", ErrPayloadCorrupt
	}
	if utf8.Valid( message ) == false {
		return "", ErrInvalidEncoding
	}
	return string(message), nil
}
