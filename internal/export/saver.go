package export

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"borrow-trends/internal/charts"
	"borrow-trends/internal/logger"

	"gocv.io/x/gocv"
)

// FileName is the image name for the artifact at index.
func FileName(index int) string {
	return fmt.Sprintf("graph_%d.png", index)
}

// Saver writes artifacts as PNG images at ExportDPI.
type Saver struct {
	dir    string
	logger logger.Logger
}

func NewSaver(dir string, log logger.Logger) *Saver {
	return &Saver{dir: dir, logger: log}
}

// SaveToPath writes the artifact into the saver's directory as
// graph_<index>.png, replacing any existing file, and returns the path.
func (s *Saver) SaveToPath(a charts.Artifact) (string, error) {
	start := time.Now()
	path := filepath.Join(s.dir, FileName(a.Index()))

	img, err := Render(a, ExportDPI)
	if err != nil {
		return "", err
	}

	mat, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return "", fmt.Errorf("convert chart image: %w", err)
	}
	defer mat.Close()

	// Surface permission and missing-directory problems as Go errors before
	// handing the path to OpenCV. The image is ready, so truncating is safe.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		s.logger.Error("ChartSaver", err, map[string]interface{}{"path": path})
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	f.Close()

	if !gocv.IMWrite(path, mat) {
		err := fmt.Errorf("write %s: image encoder failed", path)
		s.logger.Error("ChartSaver", err, map[string]interface{}{"path": path})
		return "", err
	}

	bounds := img.Bounds()
	s.logger.Info("ChartSaver", "chart saved", map[string]interface{}{
		"path":        path,
		"title":       a.Title(),
		"width":       bounds.Dx(),
		"height":      bounds.Dy(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return path, nil
}

// SaveToWriter PNG-encodes the artifact at ExportDPI into w.
func (s *Saver) SaveToWriter(w io.Writer, a charts.Artifact) error {
	img, err := Render(a, ExportDPI)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		s.logger.Error("ChartSaver", err, map[string]interface{}{"title": a.Title()})
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
