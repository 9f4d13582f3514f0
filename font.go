package appicon

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// systemFonts lists well-known font locations probed when no font file is provided.
// Fonts covering CJK come first, since the default right badge glyph needs one.
var systemFonts = []string{
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Bold.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	`C:\Windows\Fonts\msyhbd.ttc`,
	`C:\Windows\Fonts\arialbd.ttf`,
}

// Names reported for the fallback faces.
const (
	goBoldName    = "Go Bold"
	basicFontName = "basicfont 7x13"
)

// fontChoice is a parsed font together with the name it was loaded from.
type fontChoice struct {
	name string
	font *sfnt.Font
}

// loadFace returns a face of the given size able to render text, or the closest match.
// The lookup never fails: a user provided path is tried first, then the system fonts,
// then the embedded Go Bold font and finally the fixed size basicfont face.
// The first font holding a glyph for every rune of text wins; if none does,
// the first font which could be parsed at all is used.
func loadFace(path string, points float64, text string) (font.Face, string) {
	candidates := systemFonts
	if path != "" {
		candidates = append([]string{path}, systemFonts...)
	}

	var first *fontChoice
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			continue
		}
		for i := 0; i < coll.NumFonts(); i++ {
			f, err := coll.Font(i)
			if err != nil {
				continue
			}
			choice := &fontChoice{name: filepath.Base(p), font: f}
			if covers(f, text) {
				if face, ok := newFace(choice.font, points); ok {
					return face, choice.name
				}
			}
			if first == nil {
				first = choice
			}
		}
	}

	if goBold, err := opentype.Parse(gobold.TTF); err == nil {
		if covers(goBold, text) || first == nil {
			if face, ok := newFace(goBold, points); ok {
				return face, goBoldName
			}
		}
	}
	if first != nil {
		if face, ok := newFace(first.font, points); ok {
			return face, first.name
		}
	}
	return basicfont.Face7x13, basicFontName
}

// covers reports whether the font maps every rune of text to a glyph.
func covers(f *sfnt.Font, text string) bool {
	var buf sfnt.Buffer
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}

func newFace(f *sfnt.Font, points float64) (font.Face, bool) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, false
	}
	return face, true
}
