//go:build !test

package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

// CopyImage places the image on the system clipboard as PNG data.
func CopyImage(img image.Image) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())
	return nil
}

// SaveImage asks the user where to save the image and writes it as
// PNG.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Image").Save()
	if err != nil {
		return err
	}

	if len(filename) < 4 || filename[len(filename)-4:] != ".png" {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// ScaleImage returns the image scaled by the given integer factor,
// using nearest-neighbour so the pixels stay crisp.
func ScaleImage(img image.Image, scale int) image.Image {
	bounds := img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled
}
