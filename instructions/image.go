// Package instructions provides primitives for drawing raster images with fitting.
package instructions

import (
	"image"
	"image/draw"
	"math"

	"github.com/flowglyph/flowglyph/internal/core/geom"
	imageUtil "github.com/flowglyph/flowglyph/internal/core/image"
)

// FitMode defines how the source image is resized to the target width/height.
type FitMode int

const (
	// FitStretch stretches to exactly W×H. Aspect ratio is ignored.
	FitStretch FitMode = iota

	// FitContain preserves aspect ratio and fits fully inside W×H.
	// May leave empty space (letterbox/pillarbox). No cropping.
	FitContain

	// FitCover preserves aspect ratio and fills W×H completely.
	// Crops overflow. Good for thumbnails and covers.
	FitCover
)

// Image draws a raster with resize and fit-mode placement.
//
// Fields are intentionally unexported. Use setters to keep state consistent.
type Image struct {
	// src is the original input image to draw.
	src image.Image

	// x,y are the destination top-left where the prepared layer is placed.
	x, y int

	// w,h are target dimensions. Zero means use source.
	w, h int

	// fit selects the resize policy.
	fit FitMode
}

// NewImage creates a new Image at (x, y) with FitContain as the default policy.
func NewImage(src image.Image, x, y int) *Image {
	return &Image{
		x:   x,
		y:   y,
		src: src,
		fit: FitContain,
	}
}

// SetSize sets target width/height. Zero keeps that axis from the source.
func (im *Image) SetSize(w, h int) *Image { im.w, im.h = w, h; return im }

// SetFit selects Stretch/Contain/Cover.
func (im *Image) SetFit(f FitMode) *Image { im.fit = f; return im }

// SetPosition moves the layer to (x, y).
func (im *Image) SetPosition(x, y int) { im.x, im.y = x, y }

// Position returns the destination top-left coordinate.
func (im *Image) Position() (int, int) { return im.x, im.y }

// Size returns the target size. Zero values mean "use source" for that axis.
func (im *Image) Size() *geom.Size { return geom.NewSize(float64(im.w), float64(im.h)) }

// Draw resizes the source per FitMode and composites it onto overlay at (x, y);
// with FitContain the resized image is centred inside the target box. Per-element rotation is handled uniformly upstream via scene push-transform
// events, not here.
func (im *Image) Draw(_, overlay *image.RGBA) {
	if im.src == nil {
		return
	}

	img := im.src
	W, H := im.targetSize()
	if W > 0 && H > 0 {
		img = resizeWithFit(img, W, H, im.fit)
	}
	imgLayer := imageUtil.ToRGBA(img)

	dstPt := image.Pt(im.x, im.y)
	if im.fit == FitContain && W > 0 && H > 0 {
		sz := imgLayer.Bounds().Size()
		dstPt = dstPt.Add(image.Pt((W-sz.X)/2, (H-sz.Y)/2))
	}
	dstRect := image.Rectangle{Min: dstPt, Max: dstPt.Add(imgLayer.Bounds().Size())}

	place := dstRect.Intersect(overlay.Bounds())
	if place.Empty() {
		return
	}

	srcPt := imgLayer.Bounds().Min.Add(place.Min.Sub(dstRect.Min))
	draw.Draw(overlay, place, imgLayer, srcPt, draw.Over)
}

// targetSize returns the final resize dimensions, substituting source
// dimensions for any axis that is zero.
func (im *Image) targetSize() (int, int) {
	w, h := im.w, im.h
	if w <= 0 || h <= 0 {
		sb := im.src.Bounds()
		if w <= 0 {
			w = sb.Dx()
		}
		if h <= 0 {
			h = sb.Dy()
		}
	}
	return w, h
}

// resizeWithFit applies the selected FitMode.
// Stretch: direct resize. Contain: aspect-fit. Cover: aspect-fill + center crop.
func resizeWithFit(src image.Image, W, H int, mode FitMode) image.Image {
	switch mode {
	case FitStretch:
		return imageUtil.ResizeRGBA(src, W, H)

	case FitContain:
		sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
		if sw == 0 || sh == 0 {
			return imageUtil.ResizeRGBA(src, W, H)
		}
		r := math.Min(float64(W)/float64(sw), float64(H)/float64(sh))
		return imageUtil.ResizeRGBA(src,
			int(math.Round(float64(sw)*r)),
			int(math.Round(float64(sh)*r)),
		)

	case FitCover:
		sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
		if sw == 0 || sh == 0 {
			return imageUtil.ResizeRGBA(src, W, H)
		}
		r := math.Max(float64(W)/float64(sw), float64(H)/float64(sh))
		tw := int(math.Ceil(float64(sw) * r))
		th := int(math.Ceil(float64(sh) * r))

		scaled := imageUtil.ResizeRGBA(src, tw, th)
		cx := (tw - W) / 2
		cy := (th - H) / 2
		return imageUtil.CropRGBA(scaled, image.Rect(cx, cy, cx+W, cy+H))

	default:
		return imageUtil.ResizeRGBA(src, W, H)
	}
}
