package imageutil

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"
)

// Colormap maps an 8-bit intensity onto a color.
type Colormap struct {
	Name  string
	stops []colorStop
}

type colorStop struct {
	at  uint8
	rgb RGB
}

var (
	// ColormapGray is the identity ramp: black to white.
	ColormapGray = Colormap{Name: "gray", stops: []colorStop{
		{0, RGB{0, 0, 0}},
		{255, RGB{255, 255, 255}},
	}}

	// ColormapHeat runs black, deep red, orange, pale yellow.
	ColormapHeat = Colormap{Name: "heat", stops: []colorStop{
		{0, RGB{0, 0, 4}},
		{64, RGB{87, 16, 110}},
		{128, RGB{188, 55, 84}},
		{192, RGB{249, 142, 9}},
		{255, RGB{252, 255, 164}},
	}}

	// ColormapViridis runs dark purple, teal, green, yellow.
	ColormapViridis = Colormap{Name: "viridis", stops: []colorStop{
		{0, RGB{68, 1, 84}},
		{64, RGB{59, 82, 139}},
		{128, RGB{33, 145, 140}},
		{192, RGB{94, 201, 98}},
		{255, RGB{253, 231, 37}},
	}}

	colormaps = map[string]Colormap{
		ColormapGray.Name:    ColormapGray,
		ColormapHeat.Name:    ColormapHeat,
		ColormapViridis.Name: ColormapViridis,
	}
)

// LookupColormap returns the named colormap.
func LookupColormap(name string) (Colormap, error) {
	cm, ok := colormaps[strings.ToLower(name)]
	if !ok {
		return Colormap{}, fmt.Errorf("unknown colormap %q (known: %s)",
			name, strings.Join(ColormapNames(), ", "))
	}
	return cm, nil
}

// ColormapNames returns the registered colormap names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At interpolates the color for intensity v between the surrounding stops.
func (cm Colormap) At(v uint8) RGB {
	stops := cm.stops
	if len(stops) == 0 {
		return RGB{v, v, v}
	}
	if v <= stops[0].at {
		return stops[0].rgb
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if v > hi.at {
			continue
		}
		lo := stops[i-1]
		span := int(hi.at) - int(lo.at)
		t := int(v) - int(lo.at)
		return RGB{
			R: lerp(lo.rgb.R, hi.rgb.R, t, span),
			G: lerp(lo.rgb.G, hi.rgb.G, t, span),
			B: lerp(lo.rgb.B, hi.rgb.B, t, span),
		}
	}
	return stops[len(stops)-1].rgb
}

func lerp(a, b uint8, t, span int) uint8 {
	v := float64(a) + float64(int(b)-int(a))*float64(t)/float64(span)
	return uint8(math.Round(v))
}

// ApplyColormap converts a grayscale image to RGBA through cm.
func ApplyColormap(gray *GrayImage, cm Colormap) *RGBAImage {
	var lut [256]RGB
	for i := range lut {
		lut[i] = cm.At(uint8(i))
	}

	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba.SetRGB(x, y, lut[gray.GetGray(x, y)])
		}
	}
	return rgba
}

// Colorize returns gray itself for the gray ramp and an RGBA rendering
// for every other colormap.
func Colorize(gray *GrayImage, cm Colormap) image.Image {
	if cm.Name == ColormapGray.Name {
		return gray.Gray
	}
	return ApplyColormap(gray, cm).RGBA
}
