package util
import (
	"fmt"
	"syscall"
	"golang.org/x/term"
)

// GetPasswd reads the passphrase from the terminal without echoing it.
// just a wrapper for term...
func GetPasswd( prompt string ) ([]byte, error) {
	fmt.Print( prompt )
	passphrase, err := term.ReadPassword( int(syscall.Stdin) )
	fmt.Println()
	return passphrase, err
}
