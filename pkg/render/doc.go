// Package render formats built URLs into Markdown and plain-text link blocks.
//
// URLs are grouped into titled sections by environment key according to a
// Layout. A section is omitted when none of its environments has a URL.
// The default layout is:
//
//	Frontend: desktop, mobile
//	CMS:      bo
package render
