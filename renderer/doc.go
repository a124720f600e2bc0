// Package renderer formats hsa reports as markdown, and markdown as HTML.
package renderer
