package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Header(
		Class("hero"),
		ID("hero"),

		Div(Class("hero-grid")),

		Div(
			Class("container hero-content"),

			Div(
				Class("hero-title fade-down"),
				Icon("lucide--dog icon-xl", "ProductPuppy"),
				H1(g.Text("ProductPuppy")),
			),

			P(
				Class("hero-tagline fade-in"),
				g.Text("Search "),
				A(
					Href("https://www.producthunt.com/"),
					Target("_blank"),
					Rel("noopener noreferrer"),
					Class("hero-link"),
					g.Text("Product Hunt"),
				),
				g.Text(" with Context in any language"),
			),

			Form(
				Class("fade-up"),
				Method("post"),
				Action("/search/reveal"),
				Button(
					Type("submit"),
					Class("btn btn-primary btn-lg glow-button"),
					g.Text("Start Discovering Products"),
				),
			),
		),

		A(
			Class("hero-scroll"),
			Href("#search"),
			Icon("lucide--chevron-down icon-md bounce", "Scroll to search"),
		),
	)
}
