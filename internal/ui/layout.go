package ui

import "github.com/five82/dexter/internal/catalog"

// Card geometry.
const (
	// cardWidth is the outer width of one card including its border.
	cardWidth = 22

	// cardHeight is the outer height of one card including its border.
	cardHeight = 4

	// cardGap is the horizontal space between cards.
	cardGap = 1

	// groupHeaderHeight covers the category badge line and the blank line after a group.
	groupHeaderHeight = 2
)

// Fixed chrome: header, search line, footer.
const chromeHeight = 3

// cardPos addresses a card inside the grouped grid.
type cardPos struct {
	group int
	index int
}

// gridLayout maps the grouped catalog onto rows of cards. A record in two
// categories occupies two cells; the cursor moves over cells, not records.
type gridLayout struct {
	cols    int
	groups  []catalog.Group
	offsets []int // flat index of each group's first card
	total   int
}

func columnsFor(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

func newGridLayout(groups []catalog.Group, width int) gridLayout {
	g := gridLayout{cols: columnsFor(width), groups: groups, offsets: make([]int, len(groups))}
	for i, grp := range groups {
		g.offsets[i] = g.total
		g.total += len(grp.Records)
	}
	return g
}

func (g gridLayout) pos(flat int) cardPos {
	for i := len(g.groups) - 1; i >= 0; i-- {
		if flat >= g.offsets[i] {
			return cardPos{group: i, index: flat - g.offsets[i]}
		}
	}
	return cardPos{}
}

func (g gridLayout) flat(p cardPos) int {
	if p.group < 0 || p.group >= len(g.groups) {
		return 0
	}
	return g.offsets[p.group] + p.index
}

func (g gridLayout) record(flat int) (catalog.Record, bool) {
	if flat < 0 || flat >= g.total {
		return catalog.Record{}, false
	}
	p := g.pos(flat)
	return g.groups[p.group].Records[p.index], true
}

func (g gridLayout) rowsIn(group int) int {
	n := len(g.groups[group].Records)
	return (n + g.cols - 1) / g.cols
}

// moveVertical moves the cursor one row up (delta<0) or down (delta>0),
// crossing into the neighbouring group at its edges and keeping the column
// where the target row is long enough.
func (g gridLayout) moveVertical(flat, delta int) int {
	if g.total == 0 {
		return 0
	}
	p := g.pos(flat)
	row, col := p.index/g.cols, p.index%g.cols

	if delta > 0 {
		if row+1 < g.rowsIn(p.group) {
			n := len(g.groups[p.group].Records)
			return g.flat(cardPos{p.group, min((row+1)*g.cols+col, n-1)})
		}
		if p.group+1 < len(g.groups) {
			n := len(g.groups[p.group+1].Records)
			return g.flat(cardPos{p.group + 1, min(col, n-1)})
		}
		return flat
	}

	if row > 0 {
		return g.flat(cardPos{p.group, (row-1)*g.cols + col})
	}
	if p.group > 0 {
		prev := p.group - 1
		n := len(g.groups[prev].Records)
		last := (n - 1) / g.cols
		return g.flat(cardPos{prev, min(last*g.cols+col, n-1)})
	}
	return flat
}

// lineOf returns the content line where the card at flat starts.
func (g gridLayout) lineOf(flat int) int {
	p := g.pos(flat)
	line := 0
	for i := 0; i < p.group; i++ {
		line += groupHeaderHeight + g.rowsIn(i)*cardHeight
	}
	return line + 1 + (p.index/g.cols)*cardHeight
}
