package stegano
import (
	"errors"
	"fmt"
)

/*
 * the closed set of failures embed/extract may report. callers rely on
 * these to tell "no data present" apart from "data present but
 * unrecoverable"; nothing outside this set comes back for malformed
 * carriers.
 */
var (
	// ErrHeaderCorrupt: the 8-byte header codeword holds more errors
	// than its fixed redundancy can repair. Also reported for carriers
	// too small to contain a header at all.
	ErrHeaderCorrupt = errors.New("Header is corrupted beyond repair")

	// ErrInvalidLength: the header decoded cleanly but declares more
	// payload than the carrier could possibly hold.
	ErrInvalidLength = errors.New("Header declares an invalid payload length")

	// ErrPayloadCorrupt: payload errors exceed the configured redundancy.
	ErrPayloadCorrupt = errors.New("Payload is corrupted beyond repair")

	// ErrInvalidEncoding: the payload was recovered but is not valid text.
	ErrInvalidEncoding = errors.New("Recovered payload is not valid UTF-8 text")
)

// CapacityError is reported at embed time when the protected bitstream
// does not fit the carrier.
type CapacityError struct {
	Needed		int	// bits the bitstream requires
	Available	int	// bits the carrier offers, one per channel value
}

func( e *CapacityError ) Error() string {
	return fmt.Sprintf("Capacity exceeded. Need %d bits, carrier has %d.", e.Needed, e.Available)
}
