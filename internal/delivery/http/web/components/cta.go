package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CTA() g.Node {
	return Section(
		Class("cta"),
		Div(
			Class("container"),
			H2(g.Text("Ready to Join the Pack?")),
			P(Class("cta-lead"), g.Text("Become a ProductPuppy member and enjoy discovering amazing products!")),
			P(Class("cta-note"), g.Text("It's 100% free. No credit card required.")),
			Button(
				Type("button"),
				Class("btn btn-secondary btn-lg glow-button"),
				g.Text("Join the ProductPuppy Pack"),
			),
		),
	)
}
