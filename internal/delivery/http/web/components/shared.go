package components

import (
	"embed"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

//go:embed icons/*.svg
var iconFS embed.FS

// iconSVG returns the markup for "lucide:<name>", or "" for an unknown icon.
func iconSVG(iconName string) string {
	name, ok := strings.CutPrefix(iconName, "lucide:")
	if !ok || name == "" || strings.ContainsAny(name, "/.") {
		return ""
	}
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon inlines a bundled lucide icon. "lucide--dog icon-lg" renders
// icons/dog.svg inside a span tagged data-icon="lucide:dog", extra classes kept.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "icon"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("icon %s", sizeClasses)
	}

	svg := g.Raw(iconSVG(iconName))

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
			svg,
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
		svg,
	)
}

// ThemeToggle posts the opposite of the current mode.
func ThemeToggle(dark bool) g.Node {
	next, icon, label := "true", "lucide--sun", "Switch to dark mode"
	if dark {
		next, icon, label = "false", "lucide--moon", "Switch to light mode"
	}

	return Form(
		Class("theme-toggle"),
		Method("post"),
		Action("/theme"),
		Input(Type("hidden"), Name("dark"), Value(next)),
		Button(
			Type("submit"),
			Class("toggle"),
			g.Attr("aria-label", "Toggle dark mode"),
			g.Attr("aria-pressed", fmt.Sprintf("%t", dark)),
			g.Attr("title", label),
			Icon(icon, ""),
		),
	)
}
