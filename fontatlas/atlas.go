// Package fontatlas rasterizes OpenType fonts into a single-channel texture
// atlas and serves them to a gui.Context as a gui.FontProvider.
//
// Every font is a family of faces searched in order: an optional custom
// face (for example a CJK font) followed by Go Regular. Glyphs missing from
// the preloaded set are rasterized on first use when the uploader can
// update textures in place.
package fontatlas

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/logger"
)

var (
	// ErrNoFaces is returned when a font would have no face to draw with.
	ErrNoFaces = errors.New("fontatlas: no font faces")
	// ErrUnknownFont is returned by SetActiveFont for names never added.
	ErrUnknownFont = errors.New("fontatlas: unknown font")
)

const (
	DefaultName           = "default"
	DefaultSize           = 16
	DefaultReferenceScale = 2
)

// TextureUpdater is implemented by uploaders that can replace the pixels of
// a texture they created. With it, glyphs outside the preloaded set are
// added on demand.
type TextureUpdater interface {
	UpdateAlphaTexture(id uint32, width, height int, pixels []byte) error
}

// Options describes one font.
type Options struct {
	// Name registers the font under this name. Empty means DefaultName.
	Name string

	// Size is the pixel size drawn at ReferenceScale.
	Size float64

	// ReferenceScale is the gui FontScale at which glyphs are drawn 1:1.
	// Other scales stretch the atlas glyphs proportionally.
	ReferenceScale float32

	// Path or Data supply a custom face searched before Go Regular. Data
	// wins when both are set.
	Path string
	Data []byte

	// Runes are rasterized up front in addition to Latin-1.
	Runes []rune

	// NoFallback leaves Go Regular out of the family.
	NoFallback bool
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.ReferenceScale <= 0 {
		o.ReferenceScale = DefaultReferenceScale
	}
	return o
}

// Atlas is a set of named fonts sharing one uploader.
//
//	atlas, err := fontatlas.New(renderer, fontatlas.Options{Path: "NotoSansJP-Regular.otf"})
//	if err != nil {
//	    return err
//	}
//	ui.SetFontProvider(atlas)
type Atlas struct {
	uploader gui.TextureUploader
	fonts    map[string]*Font
	first    *Font
	active   *Font
}

// New builds the first font of the atlas and makes it active.
func New(uploader gui.TextureUploader, opts Options) (*Atlas, error) {
	a := &Atlas{
		uploader: uploader,
		fonts:    make(map[string]*Font),
	}
	f, err := a.Add(opts)
	if err != nil {
		return nil, err
	}
	a.active = f
	return a, nil
}

// Add builds a font and registers it under opts.Name, replacing any font
// of that name.
func (a *Atlas) Add(opts Options) (*Font, error) {
	opts = opts.withDefaults()

	faces, sources, names, err := loadFaces(opts)
	if err != nil {
		return nil, err
	}
	f, err := newFont(a.uploader, opts, faces, sources)
	if err != nil {
		closeFaces(faces)
		return nil, err
	}

	if old := a.fonts[opts.Name]; old != nil {
		old.Close()
		if a.active == old {
			a.active = f
		}
		if a.first == old {
			a.first = f
		}
	}
	a.fonts[opts.Name] = f
	if a.first == nil {
		a.first = f
	}
	logger.L().Info("font loaded", "name", opts.Name, "faces", names, "size", opts.Size,
		"glyphs", len(f.glyphs), "texture", f.texture)
	return f, nil
}

// ActiveFont implements gui.FontProvider.
func (a *Atlas) ActiveFont() gui.Font {
	if a.active == nil {
		return nil
	}
	return a.active
}

// SetActiveFont implements gui.FontProvider. An empty name selects the
// first font added.
func (a *Atlas) SetActiveFont(name string) error {
	if name == "" {
		a.active = a.first
		return nil
	}
	f, ok := a.fonts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	a.active = f
	return nil
}

// Font returns the font registered under name, or nil.
func (a *Atlas) Font(name string) *Font {
	return a.fonts[name]
}

// Names lists the registered fonts in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.fonts))
	for name := range a.fonts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func loadFaces(opts Options) ([]font.Face, []*sfnt.Font, []string, error) {
	var sources [][]byte
	data := opts.Data
	if data == nil && opts.Path != "" {
		b, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("fontatlas: read font: %w", err)
		}
		data = b
	}
	if data != nil {
		sources = append(sources, data)
	}
	if !opts.NoFallback {
		sources = append(sources, goregular.TTF)
	}
	if len(sources) == 0 {
		return nil, nil, nil, ErrNoFaces
	}

	faces := make([]font.Face, 0, len(sources))
	parsedFonts := make([]*sfnt.Font, 0, len(sources))
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		parsed, err := opentype.Parse(src)
		if err != nil {
			closeFaces(faces)
			return nil, nil, nil, fmt.Errorf("fontatlas: parse font: %w", err)
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    opts.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			closeFaces(faces)
			return nil, nil, nil, fmt.Errorf("fontatlas: create face: %w", err)
		}
		faces = append(faces, face)
		parsedFonts = append(parsedFonts, parsed)
		names = append(names, familyName(parsed))
	}
	return faces, parsedFonts, names, nil
}

func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return "unnamed"
}

func closeFaces(faces []font.Face) {
	for _, f := range faces {
		_ = f.Close()
	}
}
