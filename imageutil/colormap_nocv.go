//go:build !gocv

package imageutil

import "errors"

// OpenCVAvailable reports whether this binary was built with OpenCV
// colormap support. Build with -tags gocv to enable it.
const OpenCVAvailable = false

// ErrNoOpenCV is returned by ApplyColormapCV in builds without the gocv tag.
var ErrNoOpenCV = errors.New("built without OpenCV support (rebuild with -tags gocv)")

// ApplyColormapCV is unavailable without the gocv build tag.
func ApplyColormapCV(gray *GrayImage, name string) (*RGBAImage, error) {
	return nil, ErrNoOpenCV
}

// IsCVColormap always reports false without the gocv build tag.
func IsCVColormap(name string) bool {
	return false
}

// CVColormapNames returns nil without the gocv build tag.
func CVColormapNames() []string {
	return nil
}
