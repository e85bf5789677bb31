// Package templates renders the HTML pages. Components are plain Go built
// on templ.ComponentFunc; all dynamic values are escaped before writing.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<nav class="topnav">
<a href="/workorders" class="brand">Field Service</a>
<a href="/workorders">Work Orders</a>
<a href="/workorders/export/csv">Export CSV</a>
</nav>
<main class="container">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

func esc(s string) string { return templ.EscapeString(s) }
