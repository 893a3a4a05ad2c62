package imagery

import (
	"encoding/base64"
	"fmt"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
)

// categoryFills maps each category to the placeholder background color.
var categoryFills = map[catalog.Category]string{
	catalog.CategoryCommercial: "#1d4e89",
	catalog.CategoryMilitary:   "#4b5842",
	catalog.CategoryVintage:    "#8c5a2b",
	catalog.CategoryGeneral:    "#3a7d44",
}

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="450" viewBox="0 0 800 450">` +
	`<rect width="800" height="450" fill="%s"/>` +
	`<path d="M 330 240 L 400 200 L 470 240 L 470 225 L 405 180 L 405 150 Q 405 140 400 140 Q 395 140 395 150 L 395 180 L 330 225 Z" fill="#ffffff" opacity="0.35"/>` +
	`<text x="400" y="310" font-family="sans-serif" font-size="32" fill="#ffffff" text-anchor="middle">%s</text>` +
	`<text x="400" y="350" font-family="sans-serif" font-size="18" fill="#ffffff" opacity="0.7" text-anchor="middle">%s</text>` +
	`</svg>`

// Placeholder synthesizes a deterministic SVG data URI for an aircraft with
// no resolvable photo: the category picks the color, the model name is drawn
// as text. Same inputs, same URI.
func Placeholder(model string, category catalog.Category) string {
	fill, ok := categoryFills[category]
	if !ok {
		fill = "#555555"
	}
	svg := fmt.Sprintf(placeholderSVG, fill, escapeXML(model), escapeXML(string(category)))
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// escapeXML covers the characters that can appear in model names.
func escapeXML(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '&':
			out = append(out, []rune("&amp;")...)
		case '<':
			out = append(out, []rune("&lt;")...)
		case '>':
			out = append(out, []rune("&gt;")...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
