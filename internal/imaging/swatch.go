package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// RenderResult contains a rendered image as base64-encoded PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodeResult(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// toNRGBA renders an RGB fraction color as an 8-bit pixel value.
func toNRGBA(c color.RGB) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: uint8(c.R*255.0 + 0.5),
		G: uint8(c.G*255.0 + 0.5),
		B: uint8(c.B*255.0 + 0.5),
		A: uint8(c.A*255.0 + 0.5),
	}
}

// RenderSwatch draws a horizontal strip with one equal-width cell per
// stop, converted through the default Foley formula. The strip is
// composed at one pixel per stop and resized up to the requested
// dimensions with nearest-neighbor so cell edges stay hard.
func RenderSwatch(stops []color.HSL, width, height int) (*RenderResult, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("at least one color stop required")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch dimensions %dx%d", width, height)
	}
	if width < len(stops) {
		return nil, fmt.Errorf("width %d cannot fit %d stops", width, len(stops))
	}

	strip := imaging.New(len(stops), 1, stdcolor.NRGBA{})
	for i, stop := range stops {
		cell := imaging.New(1, 1, toNRGBA(stop.ToRGB()))
		strip = imaging.Paste(strip, cell, image.Pt(i, 0))
	}

	out := imaging.Resize(strip, width, height, imaging.NearestNeighbor)
	return encodeResult(out)
}

// RenderGradient draws a left-to-right blend from one color to another.
// Each column mixes the endpoints at its fractional position and
// converts with the requested mode, so the image is a visual record of
// both the far-arc mixing behavior and the chosen formula.
func RenderGradient(from, to color.HSL, width, height int, mode color.Mode) (*RenderResult, error) {
	if width < 2 || height <= 0 {
		return nil, fmt.Errorf("invalid gradient dimensions %dx%d", width, height)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		ratio := float64(x) / float64(width-1)
		rgb, err := from.Mix(to, ratio).RGB(mode)
		if err != nil {
			return nil, err
		}
		px := toNRGBA(rgb)
		for y := 0; y < height; y++ {
			out.SetNRGBA(x, y, px)
		}
	}

	return encodeResult(out)
}
