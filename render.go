package bytegram

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/wbrown/bytegram/imageutil"
)

// Renderer presents a finished matrix. source identifies where the bytes
// came from and is used for naming or labelling only.
type Renderer interface {
	Render(source string, m *Matrix) error
}

// ImageRenderer writes each matrix to an image file named after its
// source.
type ImageRenderer struct {
	// Dir is the output directory; empty means the working directory.
	Dir string
	// Format is one of imageutil.Formats. Empty means png.
	Format string
	// Scale enlarges every cell to Scale x Scale pixels.
	Scale int
	// Colormap names an imageutil colormap or, in gocv builds, an OpenCV
	// colormap. Empty means gray.
	Colormap string
	// Caption adds a strip with the source's base name under the image.
	Caption bool
}

// ImageRendererOption is a functional option for configuring an
// ImageRenderer.
type ImageRendererOption func(*ImageRenderer)

// NewImageRenderer creates an ImageRenderer writing 256x256 gray PNGs to
// the working directory unless options say otherwise.
func NewImageRenderer(opts ...ImageRendererOption) *ImageRenderer {
	r := &ImageRenderer{
		Format:   "png",
		Scale:    1,
		Colormap: imageutil.ColormapGray.Name,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithOutputDir sets the directory images are written to.
func WithOutputDir(dir string) ImageRendererOption {
	return func(r *ImageRenderer) {
		r.Dir = dir
	}
}

// WithFormat sets the output image format.
func WithFormat(format string) ImageRendererOption {
	return func(r *ImageRenderer) {
		r.Format = imageutil.NormalizeFormat(format)
	}
}

// WithScale sets the integer upscale factor.
func WithScale(scale int) ImageRendererOption {
	return func(r *ImageRenderer) {
		r.Scale = scale
	}
}

// WithColormap sets the colormap by name.
func WithColormap(name string) ImageRendererOption {
	return func(r *ImageRenderer) {
		r.Colormap = name
	}
}

// WithCaption enables the source-name caption strip.
func WithCaption(enabled bool) ImageRendererOption {
	return func(r *ImageRenderer) {
		r.Caption = enabled
	}
}

// Path returns where Render will write the image for source.
func (r *ImageRenderer) Path(source string) string {
	format := r.Format
	if format == "" {
		format = "png"
	}
	return OutputPath(source, r.Dir, format)
}

// Image builds the final raster for m without writing it anywhere.
func (r *ImageRenderer) Image(source string, m *Matrix) (image.Image, error) {
	gray := imageutil.ScaleGray(m.Gray(), r.Scale)

	img, err := r.colorize(gray)
	if err != nil {
		return nil, err
	}
	if !r.Caption {
		return img, nil
	}
	captioned, err := imageutil.DrawCaption(img, filepath.Base(source))
	if err != nil {
		return nil, err
	}
	return captioned, nil
}

func (r *ImageRenderer) colorize(gray *imageutil.GrayImage) (image.Image, error) {
	if imageutil.IsCVColormap(r.Colormap) {
		rgba, err := imageutil.ApplyColormapCV(gray, r.Colormap)
		if err != nil {
			return nil, err
		}
		return rgba.RGBA, nil
	}
	name := r.Colormap
	if name == "" {
		name = imageutil.ColormapGray.Name
	}
	cm, err := imageutil.LookupColormap(name)
	if err != nil {
		return nil, err
	}
	return imageutil.Colorize(gray, cm), nil
}

// colorizeRGBA resolves name against the OpenCV colormaps first (gocv
// builds only) and then the built-in ones.
func colorizeRGBA(gray *imageutil.GrayImage, name string) (*imageutil.RGBAImage, error) {
	if name == "" {
		name = imageutil.ColormapGray.Name
	}
	if imageutil.IsCVColormap(name) {
		return imageutil.ApplyColormapCV(gray, name)
	}
	cm, err := imageutil.LookupColormap(name)
	if err != nil {
		return nil, err
	}
	return imageutil.ApplyColormap(gray, cm), nil
}

// Render writes m to Path(source).
func (r *ImageRenderer) Render(source string, m *Matrix) error {
	img, err := r.Image(source, m)
	if err != nil {
		return fmt.Errorf("failed to build image: %w", err)
	}
	if err := imageutil.SaveImage(img, r.Path(source)); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
