package certificate

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas size in pixels.
const (
	Width  = 1200
	Height = 850
)

var (
	cream     = color.RGBA{0xEF, 0xED, 0xE0, 0xFF}
	amber     = color.RGBA{0xFD, 0xE6, 0x8A, 0xFF}
	amberBar  = color.RGBA{0xFB, 0xBF, 0x24, 0xFF}
	ink       = color.RGBA{0x0F, 0x17, 0x2A, 0xFF}
	slate     = color.RGBA{0x47, 0x55, 0x69, 0xFF}
	muted     = color.RGBA{0x94, 0xA3, 0xB8, 0xFF}
	ruleColor = color.RGBA{0xE2, 0xE8, 0xF0, 0xFF}
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

var (
	fontsOnce sync.Once
	fonts     fontSet
	fontsErr  error
)

func loadFonts() (fontSet, error) {
	fontsOnce.Do(func() {
		parse := func(name string, ttf []byte) *truetype.Font {
			if fontsErr != nil {
				return nil
			}
			f, err := truetype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("parse %s font: %w", name, err)
			}
			return f
		}
		fonts = fontSet{
			regular: parse("regular", goregular.TTF),
			bold:    parse("bold", gobold.TTF),
			italic:  parse("italic", goitalic.TTF),
		}
	})
	return fonts, fontsErr
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// Render rasterizes the certificate.
func (c *Certificate) Render() (image.Image, error) {
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(Width, Height)
	dc.SetColor(cream)
	dc.Clear()

	// Double amber border.
	dc.SetColor(amber)
	dc.SetLineWidth(6)
	dc.DrawRectangle(20, 20, Width-40, Height-40)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(34, 34, Width-68, Height-68)
	dc.Stroke()

	cx := float64(Width) / 2
	y := 90.0

	if c.Branding.LogoPath != "" {
		logo, err := gg.LoadImage(c.Branding.LogoPath)
		if err != nil {
			return nil, fmt.Errorf("load logo: %w", err)
		}
		logo = fitLogo(logo, 110)
		dc.DrawImageAnchored(logo, int(cx), int(y)+40, 0.5, 0.5)
		y += 110
	}

	dc.SetColor(ink)
	dc.SetFontFace(face(fs.bold, 48))
	dc.DrawStringAnchored("Certificate of Completion", cx, y+30, 0.5, 0.5)
	y += 70

	dc.SetColor(amberBar)
	dc.DrawRectangle(cx-60, y, 120, 5)
	dc.Fill()
	y += 55

	dc.SetColor(slate)
	dc.SetFontFace(face(fs.italic, 24))
	dc.DrawStringAnchored("This is to certify that", cx, y, 0.5, 0.5)
	y += 60

	dc.SetColor(ink)
	nameFace := face(fs.bold, 44)
	dc.SetFontFace(nameFace)
	dc.DrawStringAnchored(c.StudentName, cx, y, 0.5, 0.5)
	nameW, _ := dc.MeasureString(c.StudentName)
	dc.SetColor(ruleColor)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-nameW/2-40, y+32, cx+nameW/2+40, y+32)
	dc.Stroke()
	y += 80

	dc.SetColor(slate)
	dc.SetFontFace(face(fs.regular, 24))
	dc.DrawStringWrapped(c.Headline(), cx, y, 0.5, 0, 760, 1.5, gg.AlignCenter)
	y += 130

	c.drawTile(dc, fs, "SCORE", c.ScoreText(), cx-150, y)
	c.drawTile(dc, fs, "DATE", c.DateText(), cx+150, y)

	dc.SetColor(ruleColor)
	dc.SetLineWidth(1)
	dc.DrawLine(120, Height-110, Width-120, Height-110)
	dc.Stroke()

	dc.SetColor(muted)
	dc.SetFontFace(face(fs.bold, 18))
	dc.DrawStringAnchored(c.Branding.SchoolLine, cx, Height-80, 0.5, 0.5)

	return dc.Image(), nil
}

func (c *Certificate) drawTile(dc *gg.Context, fs fontSet, label, value string, x, y float64) {
	dc.SetColor(muted)
	dc.SetFontFace(face(fs.bold, 16))
	dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
	dc.SetColor(ink)
	dc.SetFontFace(face(fs.bold, 30))
	dc.DrawStringAnchored(value, x, y+40, 0.5, 0.5)
}

// fitLogo scales img down so its larger side is at most size pixels.
func fitLogo(img image.Image, size int) image.Image {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if longest <= size {
		return img
	}
	scale := float64(size) / float64(longest)
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	return dc.Image()
}

// WritePNG renders the certificate and encodes it as PNG to w.
func (c *Certificate) WritePNG(w io.Writer) error {
	img, err := c.Render()
	if err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode certificate: %w", err)
	}
	return nil
}
