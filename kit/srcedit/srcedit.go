// Package srcedit rewrites single values inside source files while leaving
// every other byte of the file as it was. Each editor locates its slot with
// a tokenizer for the host format rather than a text pattern, so comments,
// formatting and look-alike text elsewhere in the file are never touched.
package srcedit

// splice returns src with src[start:end] replaced by text.
func splice(src string, start, end int, text string) string {
	return src[:start] + text + src[end:]
}
