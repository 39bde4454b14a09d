package heightfield

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered image decoders. TIFF covers the 16-bit heightmaps
	// common in terrain tools.
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// Load reads a heightmap image (PNG or TIFF) and converts it to a
// normalized elevation field. Color images are converted to luminance;
// 16-bit sources keep their full precision.
func Load(path string) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}

	b := img.Bounds()
	field := New(b.Dx(), b.Dy())
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			field.Samples[y*field.Width+x] = float32(g.Y) / 65535
		}
	}
	return field, nil
}
