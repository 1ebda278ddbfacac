package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned by Encode for format names it does not
// know how to write.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the format names accepted by Encode, in the order they are
// presented to users.
var Formats = []string{"png", "jpeg", "gif", "tiff", "bmp"}

// NormalizeFormat maps a file extension or format alias ("jpg", ".TIF")
// onto one of Formats. Unknown names are returned lowercased and without a
// leading dot so Encode can reject them.
func NormalizeFormat(name string) string {
	name = strings.TrimPrefix(strings.ToLower(name), ".")
	switch name {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return name
}

// Encode writes img to w in the named format. Grayscale inputs stay single
// channel for png, tiff and bmp.
func Encode(w io.Writer, img image.Image, format string) error {
	switch NormalizeFormat(format) {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "gif":
		return gif.Encode(w, img, nil)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif, tif/tiff,
// bmp); anything else is written as PNG.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	format := NormalizeFormat(filepath.Ext(path))
	if !isKnownFormat(format) {
		// Default to PNG
		format = "png"
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return f.Close()
}

// SaveGrayImage saves a grayscale image to the specified path.
func SaveGrayImage(img *GrayImage, path string) error {
	return SaveImage(img.Gray, path)
}

// LoadGrayImage decodes the image at path and converts it to grayscale.
// Supports PNG, JPEG, GIF, TIFF and BMP.
func LoadGrayImage(path string) (*GrayImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if g, ok := img.(*image.Gray); ok {
		return &GrayImage{Gray: g}, nil
	}
	return GrayImageFromImage(img), nil
}

func isKnownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
