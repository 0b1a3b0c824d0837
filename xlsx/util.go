package xlsx

import (
	"strconv"

	"golang.org/x/exp/slices"
)

func formatFloatCompact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatIntCompact(v int) string {
	return strconv.Itoa(v)
}

// sortStrings sorts ss in place, ascending. Map iteration order in Go is
// randomized, so every part emitter that walks a map (content types,
// relationship lookups) sorts its keys first; this is what makes two
// writes of an equal workbook byte-for-byte identical.
func sortStrings(ss []string) {
	slices.Sort(ss)
}

// sortInts sorts ns in place, ascending.
func sortInts(ns []int) {
	slices.Sort(ns)
}

// sortStringsBy sorts ss in place using a custom less function.
func sortStringsBy(ss []string, less func(a, b string) bool) {
	slices.SortFunc(ss, func(a, b string) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

