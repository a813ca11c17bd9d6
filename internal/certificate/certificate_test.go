package certificate

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/exam"
)

var issued = time.Date(2025, 11, 4, 9, 30, 0, 0, time.UTC)

func outcome(score, total int) exam.Outcome {
	return exam.Outcome{
		StudentName: "Priya Sharma",
		Difficulty:  bank.DifficultyHard,
		Result:      exam.Grade(score, total, exam.DefaultPolicy()),
	}
}

func TestNew_RequiresPass(t *testing.T) {
	_, err := New(outcome(13, 20), Branding{}, issued)
	assert.ErrorIs(t, err, ErrNotPassed)

	_, err = New(exam.Outcome{}, Branding{}, issued)
	assert.ErrorIs(t, err, ErrNotPassed)

	c, err := New(outcome(14, 20), Branding{}, issued)
	require.NoError(t, err)
	assert.Equal(t, "14 / 20", c.ScoreText())
	assert.Equal(t, "04/11/2025", c.DateText())
	assert.Equal(t, DefaultBranding(), c.Branding)
	assert.Contains(t, c.Headline(), "(Difficult Level)")
	assert.Contains(t, c.Headline(), DefaultSchoolName)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"", "Priya Sharma", "RajAnnRaj_Certificate_Priya_Sharma.png"},
		{"RajAnnRaj", "  Ravi   Kumar ", "RajAnnRaj_Certificate_Ravi_Kumar.png"},
		{"RajAnnRaj", "O'Brien/../x", "RajAnnRaj_Certificate_OBrienx.png"},
		{"RajAnnRaj", "अमित", "RajAnnRaj_Certificate_student.png"},
		{"RajAnnRaj", "", "RajAnnRaj_Certificate_student.png"},
		{"My School", "Anu-K", "My_School_Certificate_Anu-K.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.prefix, tt.name), "FileName(%q, %q)", tt.prefix, tt.name)
	}
}

func TestRender(t *testing.T) {
	c, err := New(outcome(18, 20), Branding{}, issued)
	require.NoError(t, err)

	img, err := c.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, Width, Height), img.Bounds())

	r, g, b, _ := img.At(5, 5).RGBA()
	cr, cg, cb, _ := color.Color(cream).RGBA()
	assert.Equal(t, []uint32{cr, cg, cb}, []uint32{r, g, b}, "background is cream")
}

func TestRender_WithLogo(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 400, 200))
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, logo))
	require.NoError(t, f.Close())

	c, err := New(outcome(20, 20), Branding{LogoPath: path}, issued)
	require.NoError(t, err)
	_, err = c.Render()
	assert.NoError(t, err)

	c.Branding.LogoPath = filepath.Join(t.TempDir(), "missing.png")
	_, err = c.Render()
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	c, err := New(outcome(15, 20), Branding{}, issued)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := c.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RajAnnRaj_Certificate_Priya_Sharma.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, Width, cfg.Width)
	assert.Equal(t, Height, cfg.Height)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExport_Failure(t *testing.T) {
	c, err := New(outcome(15, 20), Branding{}, issued)
	require.NoError(t, err)

	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err = c.Export(filepath.Join(blocker, "out"))
	assert.Error(t, err)

	// A failed render leaves nothing behind.
	dir := t.TempDir()
	c.Branding.LogoPath = filepath.Join(dir, "missing.png")
	_, err = c.Export(dir)
	require.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
