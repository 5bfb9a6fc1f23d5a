// Package report renders geodatabase metadata as a standalone HTML document.
package report

import (
	"fmt"
	"io"
	"strings"

	. "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/geodata-tools/registrant/pkg/registrant"
)

// Data is everything a report needs, already projected into ordered props so
// the HTML mirrors the JSON output key for key.
type Data struct {
	Target         string
	Workspace      registrant.Props
	Domains        []registrant.Props
	Tables         []registrant.Props
	FeatureClasses []registrant.Props
}

// Render writes a self-contained HTML report to w.
func Render(w io.Writer, d Data) error {
	page := h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.TitleEl(Text("Geodatabase report")),
			h.StyleEl(Raw(stylesheet)),
		),
		h.Body(
			h.H1(Text("Geodatabase report")),
			h.P(h.Class("target"), Text(d.Target)),
			propsTable("Workspace", d.Workspace),
			section("Domains", d.Domains),
			section("Tables", d.Tables),
			section("Feature classes", d.FeatureClasses),
		),
	)
	return page.Render(w)
}

func section(title string, items []registrant.Props) Node {
	if len(items) == 0 {
		return Group([]Node{
			h.H2(Text(title)),
			h.P(h.Class("empty"), Text("None")),
		})
	}

	nodes := make([]Node, 0, len(items)+1)
	nodes = append(nodes, h.H2(Text(title)))
	for _, props := range items {
		name, _ := props.Get("Name")
		nodes = append(nodes, propsTable(fmt.Sprint(name), props))
	}
	return Group(nodes)
}

func propsTable(caption string, props registrant.Props) Node {
	rows := make([]Node, 0, len(props))
	for _, prop := range props {
		rows = append(rows, h.Tr(
			h.Th(Text(prop.Key)),
			h.Td(valueNode(prop.Value)),
		))
	}
	return h.Table(
		h.Caption(Text(caption)),
		h.TBody(Group(rows)),
	)
}

// valueNode renders a projected value. Nested props (coded values) become a
// definition list, field lists a comma-joined line, ranges a bounds pair.
func valueNode(value interface{}) Node {
	switch v := value.(type) {
	case registrant.Props:
		items := make([]Node, 0, len(v)*2)
		for _, prop := range v {
			items = append(items,
				h.Dt(Text(prop.Key)),
				h.Dd(valueNode(prop.Value)),
			)
		}
		return h.Dl(Group(items))
	case []string:
		return Text(strings.Join(v, ", "))
	case [2]float64:
		return Text(fmt.Sprintf("%v to %v", v[0], v[1]))
	default:
		return Text(fmt.Sprint(v))
	}
}

const stylesheet = `
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
h1 { border-bottom: 2px solid #333; padding-bottom: 0.3rem; }
p.target { color: #555; font-family: monospace; }
p.empty { color: #888; font-style: italic; }
table { border-collapse: collapse; margin: 1rem 0; width: 100%; }
caption { caption-side: top; font-weight: bold; text-align: left; padding: 0.3rem 0; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; vertical-align: top; }
th { background: #f4f4f4; white-space: nowrap; width: 12rem; }
dl { margin: 0; }
dt { font-weight: bold; }
dd { margin: 0 0 0.3rem 1rem; }
`
