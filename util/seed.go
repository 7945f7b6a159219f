package util
import (
	"crypto/rand"
	"encoding/binary"
	"os"

	"golang.org/x/crypto/argon2"
)

/*
 * passphrase-based seeding. the permutation seed is an int64; remembering
 * a passphrase is easier than remembering a number, so one can be derived
 * from the other. the derivation is salted so two users with the same
 * passphrase still scatter differently.
 */
const (
	SaltSize = 16
)

// DeriveSeed turns a passphrase and salt into the permutation seed.
// All argon2 parameters are fixed constants, parallelism included:
// unlike key derivation for local storage, the result must be identical
// on every machine that knows the passphrase.
func DeriveSeed( passphrase, saltBytes []byte ) int64 {
	key := argon2.Key( passphrase, saltBytes, 3, 32 * 1024, 4, 8 )
	return int64( binary.BigEndian.Uint64( key ) )
}

// LoadSalt reads the salt file, generating it first if missing. The
// salt must never change once images have been tagged with it.
func LoadSalt( filename string ) ([]byte, error) {
	saltBytes, err := os.ReadFile( filename )
	if err == nil && len(saltBytes) == SaltSize {
		return saltBytes, nil
	}
	return GenSalt( filename )
}

func GenSalt( filename string ) ([]byte, error) {
	saltBytes := make( []byte, SaltSize )
	if _, err := rand.Read( saltBytes ); err != nil {
		return nil, err
	}
	if err := os.WriteFile( filename, saltBytes, 0660 ); err != nil {
		return nil, err
	}
	return saltBytes, nil
}
