package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/qnkhuat/tetristerm/pkg/paint"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string      `json:"name"`
	Background tcell.Color `json:"background"`
	Border     tcell.Color `json:"border"`
	Text       tcell.Color `json:"text"`
	Label      tcell.Color `json:"label"`
	Empty      tcell.Color `json:"empty"`
	Ghost      tcell.Color `json:"ghost"`
	I          tcell.Color `json:"i"`
	O          tcell.Color `json:"o"`
	J          tcell.Color `json:"j"`
	L          tcell.Color `json:"l"`
	S          tcell.Color `json:"s"`
	T          tcell.Color `json:"t"`
	Z          tcell.Color `json:"z"`
}

// ThemeHex is the form themes are stored in
type ThemeHex struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
	Label      string `json:"label"`
	Empty      string `json:"empty"`
	Ghost      string `json:"ghost"`
	I          string `json:"i"`
	O          string `json:"o"`
	J          string `json:"j"`
	L          string `json:"l"`
	S          string `json:"s"`
	T          string `json:"t"`
	Z          string `json:"z"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// parseHex is the inverse of fmtHex. Anything that is not a valid hex
// color falls back to the tcell color names.
func parseHex(s string) tcell.Color {
	if s == "#0" {
		return tcell.ColorDefault
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.GetColor(s)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Background.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Empty.Hex()),
		fmtHex(t.Ghost.Hex()),
		fmtHex(t.I.Hex()),
		fmtHex(t.O.Hex()),
		fmtHex(t.J.Hex()),
		fmtHex(t.L.Hex()),
		fmtHex(t.S.Hex()),
		fmtHex(t.T.Hex()),
		fmtHex(t.Z.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		parseHex(t.Background),
		parseHex(t.Border),
		parseHex(t.Text),
		parseHex(t.Label),
		parseHex(t.Empty),
		parseHex(t.Ghost),
		parseHex(t.I),
		parseHex(t.O),
		parseHex(t.J),
		parseHex(t.L),
		parseHex(t.S),
		parseHex(t.T),
		parseHex(t.Z),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, fmt.Errorf("%q: %w", want, ErrNoTheme)
}

// LoadTheme reads a JSON list of ThemeHex from path and imports want.
// The built-in themes are searched when path is empty.
func LoadTheme(path, want string) (Theme, error) {
	themes := []ThemeHex{ThemeBasic.Hex(), ThemeMono.Hex()}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Theme{}, fmt.Errorf("failed to read themes: %w", err)
		}
		var custom []ThemeHex
		if err := json.Unmarshal(data, &custom); err != nil {
			return Theme{}, fmt.Errorf("failed to parse themes: %w", err)
		}
		// Custom themes override the built-in ones of the same name
		themes = append(custom, themes...)
	}

	return ImportThemes(want, themes)
}

// BlockColor returns the color a locked block is drawn with
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockCyan:
		return t.I
	case mino.BlockYellow:
		return t.O
	case mino.BlockBlue:
		return t.J
	case mino.BlockOrange:
		return t.L
	case mino.BlockGreen:
		return t.S
	case mino.BlockMagenta:
		return t.T
	case mino.BlockRed:
		return t.Z
	default:
		return t.Empty
	}
}

// Painter returns a piece painter using the theme's piece colors. Pieces
// are outlined with a darker shade of the background.
func (t Theme) Painter() paint.Painter {
	palette := make(paint.Palette, mino.PieceCount)
	for _, p := range mino.AllPieces {
		palette[p] = t.BlockColor(p.Block())
	}
	return paint.Painter{Palette: palette, Outline: Shade(t.Background, 0.6)}
}

// Shade scales the lightness of c by f. ColorDefault has no value and is
// returned as is.
func Shade(c tcell.Color, f float64) tcell.Color {
	if c == tcell.ColorDefault || c.Hex() < 0 {
		return c
	}
	r, g, b := c.RGB()
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, a, bb := col.Lab()
	sr, sg, sb := colorful.Lab(l*f, a, bb).Clamped().RGB255()
	return tcell.NewRGBColor(int32(sr), int32(sg), int32(sb))
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.ColorDefault, // Background
	tcell.Color247,     // Border
	tcell.ColorDefault, // Text
	tcell.Color45,      // Label
	tcell.Color236,     // Empty
	tcell.Color240,     // Ghost
	tcell.ColorAqua,    // I
	tcell.ColorYellow,  // O
	tcell.ColorBlue,    // J
	tcell.ColorOrange,  // L
	tcell.ColorLime,    // S
	tcell.ColorFuchsia, // T
	tcell.ColorRed,     // Z
}

// ThemeMono draws every piece in grey
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorBlack,   // Background
	tcell.Color250,     // Border
	tcell.Color252,     // Text
	tcell.Color255,     // Label
	tcell.Color234,     // Empty
	tcell.Color238,     // Ghost
	tcell.Color252,     // I
	tcell.Color250,     // O
	tcell.Color248,     // J
	tcell.Color246,     // L
	tcell.Color244,     // S
	tcell.Color242,     // T
	tcell.Color240,     // Z
}
