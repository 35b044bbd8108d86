package main

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"hexflake/internal/render"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// frameImage wraps a frame as an image without copying its pixels.
func frameImage(f render.Frame) *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// writeSnapshot saves the final frame as PNG plus an optional thumbnail and
// returns the written paths.
func writeSnapshot(dir string, r result, thumb int) ([]string, error) {
	if len(r.frame.Pix) == 0 {
		return nil, fmt.Errorf("no frame rendered")
	}
	img := frameImage(r.frame)
	base := filepath.Join(dir, fmt.Sprintf("%02d-%s", r.preset, slug(r.name)))
	full := base + ".png"
	if err := imgio.Save(full, img, imgio.PNGEncoder()); err != nil {
		return nil, err
	}
	paths := []string{full}
	if thumb <= 0 {
		return paths, nil
	}
	small := transform.Resize(img, thumb, thumb, transform.Linear)
	thumbPath := base + "-thumb.png"
	if err := imgio.Save(thumbPath, small, imgio.PNGEncoder()); err != nil {
		return paths, err
	}
	return append(paths, thumbPath), nil
}
