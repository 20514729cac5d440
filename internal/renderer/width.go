package renderer

import "github.com/rivo/uniseg"

// displayWidth returns the number of screen cells s occupies when it starts
// at column 0.
func displayWidth(s string, tabWidth int) int {
	col := 0
	forEachCell(s, tabWidth, func(_ rune, x, w int) {
		col = x + w
	})
	return col
}

// forEachCell walks s cluster by cluster, reporting the first rune of each
// cluster, the column it starts at and its width in cells. Tabs are reported
// as a blank spanning to the next tab stop.
func forEachCell(s string, tabWidth int, fn func(r rune, x, w int)) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	x := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)

		r := []rune(cluster)[0]
		if r == '\t' {
			w = tabWidth - x%tabWidth
			r = ' '
		}
		fn(r, x, w)
		x += w
	}
}
