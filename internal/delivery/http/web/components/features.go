package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Features is marketing copy only; none of these capabilities back the search.
func Features() g.Node {
	features := []Feature{
		{"lucide--globe", "Search in any language", "Our multilingual support ensures you can find products in your preferred language"},
		{"lucide--message-square", "Natural Language Search", "Find products naturally, without memorizing specific keywords"},
		{"lucide--target", "Context-Specific Search", "Find products by specifying your context for more relevant results"},
		{"lucide--filter", "Context-Based Discovery", "Say goodbye to clunky filter and sort functions, your context is the key"},
	}

	return Section(
		Class("features"),
		ID("features"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Why Use ProductPuppy")),
			Div(
				Class("feature-grid"),
				g.Group(g.Map(features, FeatureCard)),
			),
		),
	)
}

func FeatureCard(f Feature) g.Node {
	return Div(
		Class("card feature-card"),
		Div(Class("feature-icon"), Icon(f.Icon+" icon-lg", "")),
		H3(g.Text(f.Title)),
		P(g.Text(f.Description)),
	)
}
