// Package export renders chart artifacts to raster images and writes them out.
package export

import (
	"errors"
	"fmt"
	"image"

	"borrow-trends/internal/charts"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// ExportDPI is the resolution of saved chart images.
	ExportDPI = 300
	// DisplayDPI is the resolution used for the on-screen preview.
	DisplayDPI = 96
)

// ErrEmptyArtifact is returned for an artifact with no figure size, such as
// the zero Artifact.
var ErrEmptyArtifact = errors.New("artifact has no figure size")

// Render draws a at its figure size and the given resolution.
func Render(a charts.Artifact, dpi int) (image.Image, error) {
	if w, h := a.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render %q: %w", a.Title(), ErrEmptyArtifact)
	}
	p, err := a.Plot()
	if err != nil {
		return nil, fmt.Errorf("build plot: %w", err)
	}
	w, h := a.Size()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	return c.Image(), nil
}
