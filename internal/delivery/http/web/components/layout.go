package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// Dark puts the "dark" class on the document root, which switches every section.
	Dark bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "ProductPuppy"
	}

	if config.Description == "" {
		config.Description = "Search Product Hunt with Context in any language"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.If(config.Dark, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("page"),
				g.Group(content),
			),
		),
	})
}
