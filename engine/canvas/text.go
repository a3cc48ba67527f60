package canvas

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/prisma/engine/core"
)

// Font is a loaded BMFont: the .fnt descriptor plus its decoded page images,
// used for HUD text drawn directly onto the framebuffer.
type Font struct {
	desc  *bmfont.Descriptor
	pages map[int]image.Image
}

// LoadFont reads a BMFont .fnt descriptor and decodes the page images it
// references, resolved relative to the descriptor's directory.
func LoadFont(path string) (*Font, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		core.LogError("unable to load font descriptor '%s': %v", path, err)
		return nil, err
	}

	dir := filepath.Dir(path)
	pages := make(map[int]image.Image, len(desc.Pages))
	for id, page := range desc.Pages {
		f, err := os.Open(filepath.Join(dir, page.File))
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding font page '%s': %w", page.File, err)
		}
		pages[id] = img
	}

	return &Font{desc: desc, pages: pages}, nil
}

// LineHeight returns the vertical advance between text lines in pixels.
func (f *Font) LineHeight() int {
	return f.desc.Common.LineHeight
}

// DrawText blits the glyphs for text onto dst with the pen starting at
// (x, y), the top-left of the first line. Kerning pairs are applied.
// Characters without a glyph are skipped.
func (f *Font) DrawText(dst draw.Image, x, y int, text string) {
	penX, penY := x, y
	var prev rune
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += f.desc.Common.LineHeight
			prev = 0
			continue
		}
		glyph, ok := f.desc.Chars[r]
		if !ok {
			prev = r
			continue
		}
		if prev != 0 {
			if k, ok := f.desc.Kerning[bmfont.CharPair{First: prev, Second: r}]; ok {
				penX += k.Amount
			}
		}
		page, ok := f.pages[glyph.Page]
		if ok {
			target := image.Rect(
				penX+glyph.XOffset,
				penY+glyph.YOffset,
				penX+glyph.XOffset+glyph.Width,
				penY+glyph.YOffset+glyph.Height,
			)
			draw.Draw(dst, target, page, image.Point{X: glyph.X, Y: glyph.Y}, draw.Over)
		}
		penX += glyph.XAdvance
		prev = r
	}
}
