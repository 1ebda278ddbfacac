//go:build gocv

package imageutil

import (
	"fmt"
	"sort"
	"strings"

	"gocv.io/x/gocv"
)

var cvColormaps = map[string]gocv.ColormapTypes{
	"autumn":  gocv.ColormapAutumn,
	"bone":    gocv.ColormapBone,
	"jet":     gocv.ColormapJet,
	"winter":  gocv.ColormapWinter,
	"rainbow": gocv.ColormapRainbow,
	"ocean":   gocv.ColormapOcean,
	"summer":  gocv.ColormapSummer,
	"spring":  gocv.ColormapSpring,
	"cool":    gocv.ColormapCool,
	"hsv":     gocv.ColormapHsv,
	"pink":    gocv.ColormapPink,
	"hot":     gocv.ColormapHot,
	"parula":  gocv.ColormapParula,
}

// OpenCVAvailable reports whether this binary was built with OpenCV
// colormap support.
const OpenCVAvailable = true

// ApplyColormapCV runs gray through one of OpenCV's built-in colormaps.
func ApplyColormapCV(gray *GrayImage, name string) (*RGBAImage, error) {
	cmType, ok := cvColormaps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown OpenCV colormap %q", name)
	}

	src, err := gocv.ImageGrayToMatGray(gray.Gray)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.ApplyColorMap(src, &dst, cmType)

	// ApplyColorMap produces BGR; swap into RGBA.
	out := NewRGBAImage(gray.Width(), gray.Height())
	for y := 0; y < dst.Rows(); y++ {
		for x := 0; x < dst.Cols(); x++ {
			v := dst.GetVecbAt(y, x)
			out.SetRGB(x, y, RGB{R: v[2], G: v[1], B: v[0]})
		}
	}
	return out, nil
}

// IsCVColormap reports whether name is an OpenCV colormap.
func IsCVColormap(name string) bool {
	_, ok := cvColormaps[strings.ToLower(name)]
	return ok
}

// CVColormapNames returns the OpenCV colormap names, sorted.
func CVColormapNames() []string {
	names := make([]string, 0, len(cvColormaps))
	for name := range cvColormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
