package anilist

import "regexp"

// descriptionLimit bounds cleaned descriptions for display.
const descriptionLimit = 200

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// PreferredTitle resolves the display title: English, then Romaji, then
// Native, first non-empty wins.
func PreferredTitle(m Media) string {
	if m.Title.English != "" {
		return m.Title.English
	}
	if m.Title.Romaji != "" {
		return m.Title.Romaji
	}
	return m.Title.Native
}

// PreferredCover resolves cover art: extra-large when present, else large.
func PreferredCover(m Media) string {
	if m.CoverImage.ExtraLarge != "" {
		return m.CoverImage.ExtraLarge
	}
	return m.CoverImage.Large
}

// CleanDescription strips markup tags and truncates to 200 characters.
func CleanDescription(text string) string {
	if text == "" {
		return ""
	}
	cleaned := markupPattern.ReplaceAllString(text, "")
	runes := []rune(cleaned)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit])
	}
	return cleaned
}
