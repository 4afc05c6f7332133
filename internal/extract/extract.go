// Package extract isolates a JSON object substring from raw model output.
package extract

import "strings"

// FirstObject returns the substring from the first '{' through the last '}'
// inclusive, and whether such a span exists. It is deliberately not a
// balanced-brace parser: a stray '{' in surrounding prose, or a stray '}'
// after the real object, widens the span and the caller surfaces the result
// as a decode failure. Keeping the heuristic cheap matches how the harness
// treats model output: best effort in, strict validation after.
func FirstObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}
