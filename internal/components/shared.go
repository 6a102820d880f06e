package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Href("#hero"),
		Class("flex items-center text-xl md:text-2xl font-bold transition-transform hover:scale-105"),
		Span(Class("text-blue-600"), g.Text("Qura")),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon from a "set--name size classes" string.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// SectionHeading is the centred title with a coloured rule under it.
func SectionHeading(title, rule string, intro ...g.Node) g.Node {
	return Div(
		Class("text-center mb-16 reveal"),
		H2(Class("text-3xl md:text-4xl font-bold text-gray-900 mb-4"), g.Text(title)),
		Div(Class(fmt.Sprintf("w-24 h-1 %s mx-auto", rule)), g.If(len(intro) > 0, Class("mb-6"))),
		g.Group(intro),
	)
}

// Anchor wraps content in a target the navbar scrolls to.
func Anchor(id string, content g.Node) g.Node {
	return Div(ID(id), Class("scroll-mt-20"), content)
}
