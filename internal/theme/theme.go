// Package theme holds the built-in color themes and the service that
// persists the active selection.
package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme reports a theme id outside the built-in catalog.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrSaveFailed reports that a selection could not be persisted.
var ErrSaveFailed = errors.New("theme save failed")

// DefaultID is the theme used before a selection is made.
const DefaultID = "orange-flame"

// Theme is one selectable color scheme. The palette fields are handed to
// the presentation layer verbatim.
type Theme struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Description   string `json:"description"`
	BgMain        string `json:"bgMain"`
	BgSidebar     string `json:"bgSidebar"`
	BgCard        string `json:"bgCard"`
	TextOnPrimary string `json:"textOnPrimary"`
	TextMain      string `json:"textMain"`
	Border        string `json:"border"`
}

var catalog = []Theme{
	{
		ID:            "orange-flame",
		Name:          "Orange Flame",
		Icon:          "Flame",
		Primary:       "#ff9b7d",
		Secondary:     "#ffcbb3",
		BgMain:        "#fff5f0",
		BgSidebar:     "#ffd4c4",
		BgCard:        "#ffe8de",
		TextOnPrimary: "#2d2220",
		TextMain:      "#2d2220",
		Border:        "rgba(45, 34, 32, 0.15)",
		Description:   "Dynamic energy for active watch sessions",
	},
	{
		ID:            "sakura-pink",
		Name:          "Sakura Pink",
		Icon:          "Flower2",
		Primary:       "#ffb3d9",
		Secondary:     "#ffd6ed",
		BgMain:        "#fff5fb",
		BgSidebar:     "#ffd9f0",
		BgCard:        "#ffe8f5",
		TextOnPrimary: "#2d2028",
		TextMain:      "#2d2028",
		Border:        "rgba(45, 32, 40, 0.15)",
		Description:   "Soft and romantic, a natural fit for shojo",
	},
	{
		ID:            "ocean-blue",
		Name:          "Ocean Blue",
		Icon:          "Waves",
		Primary:       "#7dc4ff",
		Secondary:     "#b3deff",
		BgMain:        "#f0f8ff",
		BgSidebar:     "#c4e5ff",
		BgCard:        "#ddf0ff",
		TextOnPrimary: "#1e2528",
		TextMain:      "#1e2528",
		Border:        "rgba(30, 37, 40, 0.15)",
		Description:   "Fresh and adventurous, made for action series",
	},
	{
		ID:            "cream-elegance",
		Name:          "Cream Elegance",
		Icon:          "Lightbulb",
		Primary:       "#e8d4b8",
		Secondary:     "#f5e8d6",
		BgMain:        "#fffbf5",
		BgSidebar:     "#f0e4d0",
		BgCard:        "#f8f0e5",
		TextOnPrimary: "#2d2820",
		TextMain:      "#2d2820",
		Border:        "rgba(45, 40, 32, 0.15)",
		Description:   "Minimal and restful for long sessions",
	},
	{
		ID:            "royal-purple",
		Name:          "Royal Purple",
		Icon:          "Crown",
		Primary:       "#c49fff",
		Secondary:     "#ddc4ff",
		BgMain:        "#f9f5ff",
		BgSidebar:     "#e0d0ff",
		BgCard:        "#ede5ff",
		TextOnPrimary: "#28232d",
		TextMain:      "#28232d",
		Border:        "rgba(40, 35, 45, 0.15)",
		Description:   "Mystic and striking for fantasy worlds",
	},
	{
		ID:            "sunset-gold",
		Name:          "Sunset Gold",
		Icon:          "Sun",
		Primary:       "#ffd97d",
		Secondary:     "#ffe8b3",
		BgMain:        "#fffcf0",
		BgSidebar:     "#ffecc4",
		BgCard:        "#fff5dd",
		TextOnPrimary: "#2d2820",
		TextMain:      "#2d2820",
		Border:        "rgba(45, 40, 32, 0.15)",
		Description:   "Warm and nostalgic for quieter evenings",
	},
}

// All returns the catalog in presentation order.
func All() []Theme {
	return append([]Theme(nil), catalog...)
}

// Lookup returns the theme with the given id.
func Lookup(id string) (Theme, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, id)
}
