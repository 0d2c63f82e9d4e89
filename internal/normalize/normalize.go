package normalize

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Name returns the uniqueness key of a player name.
func Name(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SortByName orders items by a locale-aware comparison of their names,
// keeping the input order for equal names. A Collator is not safe for
// concurrent use, so one is built per call.
func SortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
