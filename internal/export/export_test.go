package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"borrow-trends/internal/charts"
	"borrow-trends/internal/dataprep"
	"borrow-trends/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loans = `Income,Loan_Amount,Credit_Score,Age,Gender,Default
50000,20000,700,34,Male,Yes
60000,,650,45,Female,No
42000,15000,680,29,Female,No
81000,32000,720,51,Male,Yes
39000,12000,610,38,Male,No
`

func artifacts(t *testing.T) []charts.Artifact {
	t.Helper()
	raw, err := dataprep.LoadReader(strings.NewReader(loans))
	require.NoError(t, err)
	result, err := dataprep.NewPipeline(logger.NewNop(), dataprep.RecodeOptions{}).Clean(raw)
	require.NoError(t, err)
	out := charts.NewGenerator(logger.NewNop()).Generate(result.Records, result.Correlation)
	require.Len(t, out, 6)
	return out
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "graph_0.png", FileName(0))
	assert.Equal(t, "graph_5.png", FileName(5))
}

func TestRenderUsesFigureSizeAndDPI(t *testing.T) {
	a := artifacts(t)[0]

	img, err := Render(a, ExportDPI)
	require.NoError(t, err)
	assert.Equal(t, 2400, img.Bounds().Dx())
	assert.Equal(t, 1500, img.Bounds().Dy())

	preview, err := Render(a, DisplayDPI)
	require.NoError(t, err)
	assert.Equal(t, 768, preview.Bounds().Dx())
}

func TestSaveToWriterEncodesPNG(t *testing.T) {
	a := artifacts(t)[4]
	var buf bytes.Buffer

	require.NoError(t, NewSaver(t.TempDir(), logger.NewNop()).SaveToWriter(&buf, a))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1800, cfg.Width)
	assert.Equal(t, 1200, cfg.Height)
}

func TestSaveToPathOverwrites(t *testing.T) {
	dir := t.TempDir()
	a := artifacts(t)[5]
	target := filepath.Join(dir, "graph_5.png")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	path, err := NewSaver(dir, logger.NewNop()).SaveToPath(a)
	require.NoError(t, err)
	assert.Equal(t, target, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 2400, cfg.Width)
	assert.Equal(t, 1800, cfg.Height)
}

func TestSaveToPathReportsUnwritableDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := NewSaver(dir, logger.NewNop()).SaveToPath(artifacts(t)[0])
	assert.Error(t, err)
}

func TestRenderRejectsEmptyArtifact(t *testing.T) {
	_, err := Render(charts.Artifact{}, DisplayDPI)
	assert.ErrorIs(t, err, ErrEmptyArtifact)
}

func TestSaveToPathKeepsPreviousImageWhenRenderFails(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, FileName(0))
	require.NoError(t, os.WriteFile(target, []byte("previous"), 0o644))

	_, err := NewSaver(dir, logger.NewNop()).SaveToPath(charts.Artifact{})
	require.ErrorIs(t, err, ErrEmptyArtifact)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(content))
}
