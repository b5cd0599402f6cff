// Package placeholder builds inline SVG data URIs used as product
// image fallbacks, no external network required.
package placeholder

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

const (
	defaultWidth  = 250
	defaultHeight = 200

	background = "#ecf0f1"
	foreground = "#7f8c8d"
)

const svgTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
<rect width="100%%" height="100%%" fill="%s"/>
<text x="50%%" y="50%%" font-family="Segoe UI, Tahoma, sans-serif" font-size="16" fill="%s" dominant-baseline="middle" text-anchor="middle">%s</text>
</svg>`

// DataURI returns a 250x200 placeholder graphic bearing the text.
func DataURI(text string) string {
	return DataURISize(text, defaultWidth, defaultHeight)
}

func DataURISize(text string, width, height int) string {
	svg := fmt.Sprintf(svgTemplate,
		width, height, background, foreground, html.EscapeString(text))

	encoded := url.QueryEscape(svg)
	encoded = strings.ReplaceAll(encoded, "+", "%20")

	return "data:image/svg+xml;charset=UTF-8," + encoded
}
