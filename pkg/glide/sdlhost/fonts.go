package sdlhost

import (
	"errors"
	"os"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

// Searched in order when the theme names no font.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

type FontSizes struct {
	Title int
	Body  int
	Small int
}

var DefaultFontSizes = FontSizes{
	Title: 34,
	Body:  20,
	Small: 15,
}

type fontsType struct {
	TitleFont *ttf.Font
	BodyFont  *ttf.Font
	SmallFont *ttf.Font
}

func resolveFontPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, candidate := range systemFontPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.New("no font configured and no system font found")
}

func loadFonts(path string, sizes FontSizes) (*fontsType, error) {
	path, err := resolveFontPath(path)
	if err != nil {
		return nil, glide.NewInfrastructureError("load_font", err)
	}

	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, glide.NewInfrastructureError("load_font", err)
		}
		return font, nil
	}

	f := &fontsType{}
	if f.TitleFont, err = open(sizes.Title); err != nil {
		return nil, err
	}
	if f.BodyFont, err = open(sizes.Body); err != nil {
		f.close()
		return nil, err
	}
	if f.SmallFont, err = open(sizes.Small); err != nil {
		f.close()
		return nil, err
	}

	internal.GetInternalLogger().Debug("Loaded fonts", "path", path)
	return f, nil
}

func (f *fontsType) close() {
	for _, font := range []*ttf.Font{f.TitleFont, f.BodyFont, f.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
}

// ttfMetrics measures page text with the loaded fonts.
type ttfMetrics struct {
	fonts *fontsType
}

func (m ttfMetrics) TitleHeight() int32 {
	return int32(m.fonts.TitleFont.Height())
}

func (m ttfMetrics) LineHeight() int32 {
	return lineHeight(m.fonts.BodyFont)
}

func (m ttfMetrics) Wrap(text string, maxWidth int32) []string {
	return wrapText(text, maxWidth, m.bodyWidth)
}

func (m ttfMetrics) TextWidth(text string) int32 {
	w, _, err := m.fonts.SmallFont.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

func (m ttfMetrics) bodyWidth(text string) int32 {
	w, _, err := m.fonts.BodyFont.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

func lineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + h*3/10
}

// wrapText breaks text into lines no wider than maxWidth, splitting on
// spaces. Blank lines are kept as paragraph breaks. A single word wider
// than maxWidth gets a line of its own.
func wrapText(text string, maxWidth int32, width func(string) int32) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if width(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}
