package main
import (
	"os"
	"fmt"
	"path/filepath"

	"github.com/tirthikdurgam/GhostTag/config"
	"github.com/tirthikdurgam/GhostTag/stegano"
	"github.com/tirthikdurgam/GhostTag/util"
)

const (
	GhostFolder = ".ghosttag"
	ConfigFilename = "config.yaml"
	LogFilename = "log.log"
	SaltFilename = "salt.bin"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	ghostFolder := filepath.Join( home, GhostFolder )
	if _, err = os.Stat( ghostFolder ); err != nil {
		if err = os.Mkdir( ghostFolder, 0760 ); err != nil {
			fatal("Failed to create ghosttag directory in user's home folder:", err)
		}
	}
	configFile := filepath.Join( ghostFolder, ConfigFilename )
	saltFile := filepath.Join( ghostFolder, SaltFilename )
	util.DebugPrintln( "config:", configFile )

	// commands which must be handled before the engine is configured
	switch os.Args[1] {
	case "genconf":
		conf := config.DefaultConfig( filepath.Join( ghostFolder, LogFilename ) )
		if err = config.SaveConfig( configFile, conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
		fmt.Println("Wrote", configFile)
		return
	case "gensalt":
		if _, err = util.GenSalt( saltFile ); err != nil {
			fatal("Failed to generate salt:", err)
		}
		fmt.Println("Wrote", saltFile)
		return
	}

	// if the tool runs for the first time, create a default configuration
	if _, err := os.Stat( configFile ); err != nil {
		conf := config.DefaultConfig( filepath.Join( ghostFolder, LogFilename ) )
		if err = config.SaveConfig( configFile, conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}
	conf, err := config.LoadConfig( configFile )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &conf.Logger )

	seed := conf.Engine.Seed
	if conf.Engine.UsePassphrase {
		saltBytes, err := util.LoadSalt( saltFile )
		if err != nil {
			fatal("Failed to get salt bytes:", err)
		}
		passphrase, err := util.GetPasswd("Passphrase: ")
		if err != nil {
			fatal("Failed to read passphrase from stdin:", err)
		}
		seed = util.DeriveSeed( passphrase, saltBytes )
	}

	engine, err := stegano.New( conf.Engine.Redundancy, seed )
	if err != nil {
		fatal("Failed to configure engine:", err)
	}

	switch os.Args[1] {
	case "embed":
		if len( os.Args ) < 5 {
			help()
			return
		}
		message := util.FixUnicode( os.Args[3] )
		util.DebugPrintf( "embedding %d bytes into %s", len(message), os.Args[2] )
		output, err := engine.EmbedFile( os.Args[2], message, os.Args[4] )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to embed message:", err)
		}
		logger.LogInfo( "embedded message into " + output )
		fmt.Println( output )
	case "extract":
		if len( os.Args ) < 3 {
			help()
			return
		}
		util.DebugPrintf( "extracting from %s", os.Args[2] )
		message, err := engine.ExtractFile( os.Args[2] )
		if err != nil {
			logger.LogError( err )
			fatal("Failed to extract message:", err)
		}
		logger.LogInfo( "extracted message from " + os.Args[2] )
		fmt.Println( message )
	default:
		help()
	}
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./ghosttag <command> [arguments]

The following commands are supported:
	embed <image> <message> <output>	hide a message inside an image
	extract <image>				recover a hidden message
	genconf					write the default configuration
	gensalt					regenerate the passphrase salt
`

	fmt.Printf("%s", line)
}
