package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareTarget   tcell.Color `json:"squareTarget"`
	SquareLast     tcell.Color `json:"squareLast"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Msg            tcell.Color `json:"msg"`
}

// ThemeHex is the form a Theme takes in a JSON theme file
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareSelected string `json:"squareSelected"`
	SquareTarget   string `json:"squareTarget"`
	SquareLast     string `json:"squareLast"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Msg            string `json:"msg"`
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

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareTarget.Hex()),
		fmtHex(t.SquareLast.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareTarget),
		tcell.GetColor(t.SquareLast),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Msg),
	}
}

// LoadThemes reads a JSON array of ThemeHex from path.
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return themes, nil
}

// ImportThemes returns the theme named want, looking at the provided
// themes first and the built-in ones after
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color226, // SquareSelected
	tcell.Color123, // SquareTarget
	tcell.Color223, // SquareLast
	tcell.Color218, // SquareCheck
	tcell.Color240, // White
	tcell.Color232, // Black
	tcell.Color247, // Rank
	tcell.Color247, // File
	tcell.Color160, // Msg
}

// ThemeSlate is a grey board with yellow and cyan highlights
var ThemeSlate = Theme{
	"slate",
	tcell.Color240,
	tcell.Color255,
	tcell.ColorYellow,
	tcell.ColorDarkCyan,
	tcell.Color250,
	tcell.ColorIndianRed,
	tcell.Color172,
	tcell.Color232,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorYellow,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeSlate}
