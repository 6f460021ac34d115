package models

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByNome orders employees ascending by Nome under Brazilian Portuguese
// collation at base strength: case and diacritics are ignored, and ties keep
// their input order.
func SortByNome(list []Employee) {
	// A Collator keeps internal buffers and is not safe for concurrent use.
	c := collate.New(language.BrazilianPortuguese, collate.Loose)
	slices.SortStableFunc(list, func(a, b Employee) int {
		return c.CompareString(a.Nome, b.Nome)
	})
}
