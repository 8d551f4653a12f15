package query

import (
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Fold lowercases a search term with full Unicode case folding. The column
// side of a filter goes through the driver's LOWER, so stored values are
// expected to carry accents in lowercase; the term side tolerates any case.
func Fold(s string) string {
	return foldCaser.String(s)
}
