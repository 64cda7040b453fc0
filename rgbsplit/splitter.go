package rgbsplit

import (
	"image"
	"image/color"
)

// SplitChannels isolates each RGB channel of img, zeroing the other
// two. Alpha is discarded, matching an RGB conversion.
func SplitChannels(img image.Image) (*image.RGBA, *image.RGBA, *image.RGBA) {
	bounds := img.Bounds()
	red := image.NewRGBA(bounds)
	green := image.NewRGBA(bounds)
	blue := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()

			red.SetRGBA(x, y, color.RGBA{R: uint8(r >> 8), A: 0xff})
			green.SetRGBA(x, y, color.RGBA{G: uint8(g >> 8), A: 0xff})
			blue.SetRGBA(x, y, color.RGBA{B: uint8(b >> 8), A: 0xff})
		}
	}

	return red, green, blue
}
