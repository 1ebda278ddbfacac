package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest copies source pixels without blending. Digram
	// cells are discrete counts, so this is the default for upscaling.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom, the best choice for shrinking a
	// matrix down to terminal size.
	InterpolationArea
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaleGray enlarges a grayscale image by an integer factor with
// nearest-neighbor sampling so each source pixel becomes a factor x factor
// square. Factors below 2 return the image unchanged.
func ScaleGray(img *GrayImage, factor int) *GrayImage {
	if factor < 2 {
		return img
	}
	return ResizeGray(img, img.Width()*factor, img.Height()*factor, InterpolationNearest)
}

// ResizeGrayToWidth resizes an image to the specified width while
// maintaining aspect ratio.
func ResizeGrayToWidth(img *GrayImage, width int, interp Interpolation) *GrayImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return ResizeGray(img, width, height, interp)
}
