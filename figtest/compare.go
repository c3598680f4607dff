package figtest

import (
	"fmt"
	"image"
	"math"
	"os"

	// Decoders for the raster formats Savefig produces.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// CompareImages decodes two image files and returns the root-mean-square
// difference of their 8-bit RGBA samples: 0 for identical images, 255 at
// most. The images must have the same dimensions.
func CompareImages(pathA, pathB string) (float64, error) {
	imgA, err := decodeImage(pathA)
	if err != nil {
		return 0, err
	}
	imgB, err := decodeImage(pathB)
	if err != nil {
		return 0, err
	}

	boundsA, boundsB := imgA.Bounds(), imgB.Bounds()
	if boundsA.Dx() != boundsB.Dx() || boundsA.Dy() != boundsB.Dy() {
		return 0, fmt.Errorf("figtest: image sizes differ: %dx%d vs %dx%d",
			boundsA.Dx(), boundsA.Dy(), boundsB.Dx(), boundsB.Dy())
	}

	var sum float64
	for y := 0; y < boundsA.Dy(); y++ {
		for x := 0; x < boundsA.Dx(); x++ {
			ra, ga, ba, aa := imgA.At(boundsA.Min.X+x, boundsA.Min.Y+y).RGBA()
			rb, gb, bb, ab := imgB.At(boundsB.Min.X+x, boundsB.Min.Y+y).RGBA()
			for _, d := range [4]float64{
				float64(ra>>8) - float64(rb>>8),
				float64(ga>>8) - float64(gb>>8),
				float64(ba>>8) - float64(bb>>8),
				float64(aa>>8) - float64(ab>>8),
			} {
				sum += d * d
			}
		}
	}
	samples := float64(boundsA.Dx() * boundsA.Dy() * 4)
	return math.Sqrt(sum / samples), nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("figtest: opening %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("figtest: decoding %s: %w", path, err)
	}
	return img, nil
}
