package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			P(g.Text("© 2024 ProductPuppy. All rights reserved. Woof!")),
			P(
				Class("footer-made"),
				g.Text("Made with "),
				Icon("lucide--heart icon-sm heart", "love"),
				g.Text(" and "),
				Icon("lucide--brain icon-sm brain", "brains"),
				g.Text(" in College Park, MD"),
			),
		),
	)
}
