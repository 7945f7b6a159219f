package stegano
import (
	"github.com/tirthikdurgam/GhostTag/stegano/img"
)

/*
 * file-level wrappers tying the engine to the image collaborator.
 * I/O failures from the collaborator propagate unchanged; only the
 * engine itself speaks the classified taxonomy.
 */

// EmbedFile hides message inside the image at imagePath and writes the
// result to outputPath, forcing a lossless extension when needed. The
// actual output path is returned.
func( e *Engine ) EmbedFile( imagePath, message, outputPath string ) (string, error) {
	raster, err := img.Load( imagePath )
	if err != nil {
		return "", err
	}
	if _, err = e.Embed( raster.Pix, message ); err != nil {
		return "", err
	}
	outputPath = img.LosslessPath( outputPath )
	if err = raster.Save( outputPath ); err != nil {
		return "", err
	}
	return outputPath, nil
}

// ExtractFile recovers a message from the image at imagePath.
func( e *Engine ) ExtractFile( imagePath string ) (string, error) {
	raster, err := img.Load( imagePath )
	if err != nil {
		return "", err
	}
	return e.Extract( raster.Pix )
}
