package util
import (
	"golang.org/x/text/unicode/norm"
)

// messages arrive from the command line in whatever normalization the
// shell produced; embed and extract must agree on the bytes, so
// everything is normalized to NFC before it reaches the engine.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}
