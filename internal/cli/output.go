package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/geodata-tools/registrant/pkg/registrant"
)

// writeProps prints one projected item as indented "Key: Value" lines.
// Nested props (coded values) indent one more level; field lists print one
// field per line.
func writeProps(w io.Writer, props registrant.Props, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, prop := range props {
		switch v := prop.Value.(type) {
		case registrant.Props:
			fmt.Fprintf(w, "%s%s:\n", pad, prop.Key)
			writeProps(w, v, indent+1)
		case []string:
			fmt.Fprintf(w, "%s%s:\n", pad, prop.Key)
			for _, item := range v {
				fmt.Fprintf(w, "%s  %s\n", pad, item)
			}
		case [2]float64:
			fmt.Fprintf(w, "%s%s: %v to %v\n", pad, prop.Key, v[0], v[1])
		default:
			fmt.Fprintf(w, "%s%s: %v\n", pad, prop.Key, v)
		}
	}
}

// writePropsList prints a sequence of projected items separated by blank
// lines, or a placeholder when there are none.
func writePropsList(w io.Writer, items []registrant.Props) {
	if len(items) == 0 {
		fmt.Fprintln(w, "None")
		return
	}
	for i, props := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeProps(w, props, 0)
	}
}

// writeJSON emits v as indented JSON. Props marshal in projection order.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
