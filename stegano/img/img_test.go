package img
import (
	"os"
	"path/filepath"
	"testing"
)

func testRaster( width, height int ) *Raster {
	raster := &Raster{
		Width: width,
		Height: height,
		Pix: make( []uint8, width * height * Channels ),
	}
	for i := range raster.Pix {
		raster.Pix[i] = uint8( (i * 7) % 256 )
	}
	return raster
}

func TestSaveLoadRoundTrip( t *testing.T ) {
	dir := t.TempDir()
	files := []string{
		"image.png",
		"image.bmp",
	}

	for _, filename := range files {
		path := filepath.Join( dir, filename )
		raster := testRaster( 10, 8 )
		if err := raster.Save( path ); err != nil {
			t.Errorf("Failed to save %s: %v", filename, err)
			continue
		}
		loaded, err := Load( path )
		if err != nil {
			t.Errorf("Failed to load %s: %v", filename, err)
			continue
		}
		if loaded.Width != raster.Width || loaded.Height != raster.Height {
			t.Errorf("%s: dimensions changed to %dx%d", filename, loaded.Width, loaded.Height)
			continue
		}
		for i := range raster.Pix {
			if loaded.Pix[i] != raster.Pix[i] {
				t.Errorf("%s: channel value %d changed: %d != %d",
					filename, i, loaded.Pix[i], raster.Pix[i])
				break
			}
		}
	}
}

func TestLoadUnsupportedFormat( t *testing.T ) {
	path := filepath.Join( t.TempDir(), "image.jpg" )
	// a jpeg magic with no image behind it
	if err := os.WriteFile( path, []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}, 0660 ); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := Load( path ); err == nil {
		t.Error("Expected an error for a jpeg carrier")
	}
}

func TestSaveRejectsInconsistentRaster( t *testing.T ) {
	raster := &Raster{ Width: 4, Height: 4, Pix: make( []uint8, 5 ) }
	if err := raster.Save( filepath.Join( t.TempDir(), "broken.png" ) ); err == nil {
		t.Error("Expected an error for an inconsistent raster")
	}
}

func TestLosslessPath( t *testing.T ) {
	tests := map[string]string{
		"out.png": "out.png",
		"out.PNG": "out.PNG",
		"out.bmp": "out.bmp",
		"out.jpg": "out.jpg.png",
		"out": "out.png",
		"photo.jpeg": "photo.jpeg.png",
	}
	for in, expected := range tests {
		if got := LosslessPath( in ); got != expected {
			t.Errorf("LosslessPath(%q) = %q, expected %q", in, got, expected)
		}
	}
}
