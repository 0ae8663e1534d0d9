package catalog

// Group is one category label and the records bearing it.
type Group struct {
	Category string
	Records  []Record
}

// Grouping maps category labels to records. Labels keep first-encounter
// order. A record with several categories appears in each of their groups.
type Grouping struct {
	order  []string
	groups map[string][]Record
}

// GroupByCategory walks records once and appends each record to the group of
// every category it carries, in the record's own category order.
func GroupByCategory(records []Record) Grouping {
	g := Grouping{groups: make(map[string][]Record)}
	for _, rec := range records {
		for _, label := range rec.Categories {
			if _, ok := g.groups[label]; !ok {
				g.order = append(g.order, label)
			}
			g.groups[label] = append(g.groups[label], rec)
		}
	}
	return g
}

// Categories returns labels in first-encounter order.
func (g Grouping) Categories() []string {
	if len(g.order) == 0 {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Records returns the records in the named group, or nil.
func (g Grouping) Records(label string) []Record {
	return CloneRecords(g.groups[label])
}

// Groups returns every group in label order.
func (g Grouping) Groups() []Group {
	out := make([]Group, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, Group{Category: label, Records: CloneRecords(g.groups[label])})
	}
	return out
}

// Len is the number of distinct labels.
func (g Grouping) Len() int {
	return len(g.order)
}

// Placements is the total number of record placements across all groups.
func (g Grouping) Placements() int {
	n := 0
	for _, recs := range g.groups {
		n += len(recs)
	}
	return n
}

// Clone returns an independent copy.
func (g Grouping) Clone() Grouping {
	if len(g.order) == 0 {
		return Grouping{}
	}
	dup := Grouping{
		order:  g.Categories(),
		groups: make(map[string][]Record, len(g.groups)),
	}
	for label, recs := range g.groups {
		dup.groups[label] = CloneRecords(recs)
	}
	return dup
}
