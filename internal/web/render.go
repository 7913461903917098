package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin/render"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"index", "category", "cart", "about", "error"}

var funcs = template.FuncMap{
	"price": formatPrice,
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}

// formatPrice renders an amount as dollars with thousands separators and two
// decimals, e.g. $1,234.50.
func formatPrice(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// pages holds one template set per page, each combined with the shared layout.
type pages map[string]*template.Template

func loadPages() (pages, error) {
	out := make(pages, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func (p pages) Instance(name string, data any) render.Render {
	return render.HTML{Template: p[name], Name: "layout", Data: data}
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
