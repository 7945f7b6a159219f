package util
import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveSeedDeterminism( t *testing.T ) {
	salt := bytes.Repeat( []byte{0x11}, SaltSize )
	first := DeriveSeed( []byte("correct horse"), salt )
	second := DeriveSeed( []byte("correct horse"), salt )
	if first != second {
		t.Errorf("Seed derivation is not reproducible: %d != %d", first, second)
	}
}

func TestDeriveSeedDependsOnInputs( t *testing.T ) {
	saltA := bytes.Repeat( []byte{0x11}, SaltSize )
	saltB := bytes.Repeat( []byte{0x22}, SaltSize )

	base := DeriveSeed( []byte("correct horse"), saltA )
	if DeriveSeed( []byte("battery staple"), saltA ) == base {
		t.Error("Different passphrases derived the same seed")
	}
	if DeriveSeed( []byte("correct horse"), saltB ) == base {
		t.Error("Different salts derived the same seed")
	}
}

func TestLoadSaltCreatesAndReuses( t *testing.T ) {
	filename := filepath.Join( t.TempDir(), "salt.bin" )
	first, err := LoadSalt( filename )
	if err != nil {
		t.Fatalf("Failed to create salt: %v", err)
	}
	if len(first) != SaltSize {
		t.Fatalf("Salt is %d bytes, expected %d", len(first), SaltSize)
	}
	second, err := LoadSalt( filename )
	if err != nil {
		t.Fatalf("Failed to reload salt: %v", err)
	}
	if bytes.Equal( first, second ) == false {
		t.Error("Salt changed between loads")
	}
	if _, err := os.Stat( filename ); err != nil {
		t.Errorf("Salt file was not persisted: %v", err)
	}
}
