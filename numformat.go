package jsonstream

import "strconv"

// parseFloatStrict converts the exact lexical form the tokenizer captured
// (already validated digit-by-digit against the JSON number grammar) into
// a float64. The tokenizer only hands over text that matches the JSON
// number grammar, so the only error ParseFloat can report is a range error
// (e.g. "1e400"); ParseFloat then returns ±Inf, or zero on underflow, and
// that value is used as is.
func parseFloatStrict(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
