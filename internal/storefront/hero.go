package storefront

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const heroMarkdown = `# Delicious Food, Delivered Fast

Order from your favorite restaurants and get food delivered to your door in minutes.
Fresh, hot, and always on time.
`

// RenderHero renders the banner as terminal markdown wrapped at width.
// On renderer errors it returns the plain-text banner.
func RenderHero(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plainHero()
	}
	out, err := r.Render(heroMarkdown)
	if err != nil {
		return plainHero()
	}
	return strings.Trim(out, "\n")
}

func plainHero() string {
	return "Delicious Food, Delivered Fast\n" +
		"Order from your favorite restaurants and get food delivered to your door in minutes."
}
