package components

import (
	"fmt"

	"productpuppy/internal/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SearchSection renders the search box and, once revealed, the filtered
// products or the no-results message.
func SearchSection(view domain.PageView) g.Node {
	return Section(
		Class("search"),
		ID("search"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Dig Up Your Perfect Product")),

			Form(
				Class("search-form"),
				Method("get"),
				Action("/#search"),
				g.Attr("role", "search"),
				Div(
					Class("search-input-wrapper"),
					Icon("lucide--search search-icon", ""),
					Input(
						Type("text"),
						Name("q"),
						Class("search-input"),
						Placeholder("Search products..."),
						Value(view.State.Query),
						AutoComplete("off"),
						g.Attr("aria-label", "Search products"),
					),
				),
			),

			g.If(view.ShowResults,
				Div(
					Class("product-grid fade-up"),
					ID("results"),
					g.Attr("data-count", fmt.Sprintf("%d", len(view.Products))),
					g.Group(g.Map(view.Products, ProductCard)),
				),
			),

			g.If(view.ShowEmpty,
				P(Class("no-results fade-in"), ID("no-results"), g.Text(domain.NoResultsMessage)),
			),
		),
	)
}

func ProductCard(p domain.Product) g.Node {
	return Div(
		Class("card product-card"),
		ID("product-"+p.Slug),
		g.Attr("data-product-id", fmt.Sprintf("%d", p.ID)),
		H3(Class("product-name"), g.Text(p.Name)),
		P(Class("product-category"), g.Text(p.Category)),
		P(Class("product-description"), g.Text(p.Description)),
	)
}
