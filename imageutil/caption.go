package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// CaptionHeight is the height in pixels of the strip DrawCaption adds
	// below the image.
	CaptionHeight = 18
	captionSize   = 11
	captionMargin = 4
)

var (
	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

func loadCaptionFont() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = freetype.ParseFont(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// DrawCaption returns a copy of img with a black strip of CaptionHeight
// pixels appended at the bottom, with text drawn into it in white. Text
// wider than the image is clipped.
func DrawCaption(img image.Image, text string) (*image.RGBA, error) {
	ttf, err := loadCaptionFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+CaptionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	strip := image.Rect(0, b.Dy(), b.Dx(), b.Dy()+CaptionHeight)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(captionSize)
	ctx.SetClip(strip)
	ctx.SetDst(out)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Baseline sits captionMargin above the bottom edge.
	pt := freetype.Pt(captionMargin, b.Dy()+CaptionHeight-captionMargin)
	if _, err := ctx.DrawString(text, pt); err != nil {
		return nil, fmt.Errorf("failed to draw caption: %w", err)
	}
	return out, nil
}
