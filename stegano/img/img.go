package img
import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

/*
 * the image collaborator: lossless raster load/save around the engine.
 * only png and bmp are accepted, since the hidden bits do not survive
 * re-quantization by lossy formats.
 */

// Channels per pixel. The raster is flattened RGB; alpha is not a
// carrier slot.
const Channels = 3

// Raster is the flattened form of an image: row-major, channel-minor,
// one byte per channel value. The flattening order is identical on Load
// and Save so untouched slots survive a round trip byte-exact.
type Raster struct {
	Width	int
	Height	int
	Pix	[]uint8
}

func Load( path string ) (*Raster, error) {
	data, err := os.ReadFile( path )
	if err != nil {
		return nil, err
	}
	src, err := decode( data )
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make( []uint8, 0, width * height * Channels )
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At( x, y ).RGBA()
			pix = append( pix, uint8(r >> 8), uint8(g >> 8), uint8(b >> 8) )
		}
	}
	return &Raster{ width, height, pix }, nil
}

func( r *Raster ) Save( path string ) error {
	if len(r.Pix) != r.Width * r.Height * Channels {
		return fmt.Errorf("Raster has %d channel values, expected %d", len(r.Pix), r.Width * r.Height * Channels)
	}
	out := image.NewRGBA( image.Rect( 0, 0, r.Width, r.Height ) )
	i := 0
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.Set( x, y, color.RGBA{ r.Pix[i], r.Pix[i+1], r.Pix[i+2], 0xff } )
			i += Channels
		}
	}

	buf := new( bytes.Buffer )
	switch strings.ToLower( filepath.Ext( path ) ) {
	case ".bmp":
		if err := bmp.Encode( buf, out ); err != nil {
			return err
		}
	default:
		if err := png.Encode( buf, out ); err != nil {
			return err
		}
	}
	return os.WriteFile( path, buf.Bytes(), 0660 )
}

// LosslessPath forces a lossless extension onto path when it carries
// none, so a careless "out.jpg" cannot destroy the payload on save.
func LosslessPath( path string ) string {
	switch strings.ToLower( filepath.Ext( path ) ) {
	case ".png", ".bmp":
		return path
	}
	return path + ".png"
}

func decode( data []byte ) (image.Image, error) {
	if len(data) >= 8 &&
		data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		// a png image
		return png.Decode( bytes.NewReader( data ) )
	}
	if len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4d {
		// bmp image
		return bmp.Decode( bytes.NewReader( data ) )
	}
	return nil, fmt.Errorf("Unsupported image format, expected png or bmp.")
}
