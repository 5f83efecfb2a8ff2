package bulletlist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// Style is a list configuration read from a TOML file:
//
//	items            = ["Eggs", "Flour"]
//	bullet_glyph     = "→"
//	bullet_image     = "bullet.svg"   # relative to the style file
//	bullet_font_size = 20
//	item_font_size   = 12
//	bullet_font_color = "#ff8800"     # "" inherits the host color
//	item_margin      = 1              # or [left, top, right, bottom]
//	layout_padding   = [4, 2, 4, 2]
//	strategy         = "grid"         # or "stack"
//
// Only keys present in the file are applied.
type Style struct {
	Items           []string `toml:"items"`
	BulletGlyph     string   `toml:"bullet_glyph"`
	BulletImage     string   `toml:"bullet_image"`
	BulletFontSize  float64  `toml:"bullet_font_size"`
	ItemFontSize    float64  `toml:"item_font_size"`
	BulletFontColor string   `toml:"bullet_font_color"`
	ItemFontColor   string   `toml:"item_font_color"`
	ItemMargin      Spacing  `toml:"item_margin"`
	LayoutPadding   Spacing  `toml:"layout_padding"`
	Strategy        string   `toml:"strategy"`

	// BulletImageData holds the contents of BulletImage once loaded.
	BulletImageData []byte `toml:"-"`

	meta toml.MetaData
}

// Spacing is a thickness written either as one number or as
// [left, top, right, bottom].
type Spacing model.Thickness

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Spacing) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*s = Spacing(model.Uniform(float64(v)))
	case float64:
		*s = Spacing(model.Uniform(v))
	case []any:
		if len(v) != 4 {
			return fmt.Errorf("spacing needs 4 values, got %d", len(v))
		}
		var sides [4]float64
		for i, raw := range v {
			n, ok := toFloat(raw)
			if !ok {
				return fmt.Errorf("spacing value %d is %T, not a number", i, raw)
			}
			sides[i] = n
		}
		*s = Spacing{Left: sides[0], Top: sides[1], Right: sides[2], Bottom: sides[3]}
	default:
		return fmt.Errorf("spacing must be a number or an array, got %T", data)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// LoadStyle reads and parses a style file. A relative bullet_image is
// resolved against the file's directory.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewInfrastructureError("load_style", err)
	}
	return ParseStyle(data, filepath.Dir(path))
}

// ParseStyle parses style TOML. baseDir resolves a relative bullet_image.
func ParseStyle(data []byte, baseDir string) (*Style, error) {
	var style Style
	meta, err := toml.Decode(string(data), &style)
	if err != nil {
		return nil, NewInfrastructureError("load_style", err)
	}
	style.meta = meta

	for _, key := range meta.Undecoded() {
		internal.GetInternalLogger().Warn("Ignoring unknown style key", "key", key.String())
	}

	if style.Has("bullet_image") && style.BulletImage != "" {
		path := style.BulletImage
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		style.BulletImageData, err = os.ReadFile(path)
		if err != nil {
			return nil, NewInfrastructureError("load_bullet_image", err)
		}
	}

	return &style, nil
}

// Has reports whether key was set in the parsed file.
func (s *Style) Has(key string) bool {
	return s.meta.IsDefined(key)
}

// Apply writes every key present in the file to m. Values are checked first,
// so a bad file leaves m untouched.
func (s *Style) Apply(m *model.ListModel) error {
	var setters []func()

	if s.Has("items") {
		setters = append(setters, func() { m.SetItems(s.Items) })
	}
	if s.Has("bullet_glyph") {
		setters = append(setters, func() { m.SetBulletGlyph(s.BulletGlyph) })
	}
	if s.Has("bullet_image") {
		setters = append(setters, func() { m.SetBulletImage(s.BulletImageData) })
	}
	if s.Has("bullet_font_size") {
		setters = append(setters, func() { m.SetBulletFontSize(s.BulletFontSize) })
	}
	if s.Has("item_font_size") {
		setters = append(setters, func() { m.SetItemFontSize(s.ItemFontSize) })
	}
	if s.Has("bullet_font_color") {
		c, err := optionalColor("bullet_font_color", s.BulletFontColor)
		if err != nil {
			return err
		}
		setters = append(setters, func() { m.SetBulletFontColor(c) })
	}
	if s.Has("item_font_color") {
		c, err := optionalColor("item_font_color", s.ItemFontColor)
		if err != nil {
			return err
		}
		setters = append(setters, func() { m.SetItemFontColor(c) })
	}
	if s.Has("item_margin") {
		setters = append(setters, func() { m.SetItemMargin(model.Thickness(s.ItemMargin)) })
	}
	if s.Has("layout_padding") {
		setters = append(setters, func() { m.SetLayoutPadding(model.Thickness(s.LayoutPadding)) })
	}
	if s.Has("strategy") {
		strategy, err := model.ParseStrategy(s.Strategy)
		if err != nil {
			return &StyleError{Key: "strategy", Value: s.Strategy, Err: err}
		}
		setters = append(setters, func() { m.SetStrategy(strategy) })
	}

	for _, set := range setters {
		set()
	}
	return nil
}

func optionalColor(key, value string) (*model.Color, error) {
	if value == "" {
		return nil, nil
	}
	c, err := model.ParseColor(value)
	if err != nil {
		return nil, &StyleError{Key: key, Value: value, Err: err}
	}
	return &c, nil
}
