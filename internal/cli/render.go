package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/logtail"
)

// renderGroups prints one table per category, in grouping order.
func renderGroups(cat catalog.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d entries, %d types\n\n", cat.Generation, len(cat.Records), cat.Groups.Len())

	for _, grp := range cat.Groups.Groups() {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetTitle(fmt.Sprintf("%s (%d)", strings.ToUpper(grp.Category), len(grp.Records)))
		t.AppendHeader(table.Row{"#", "Name", "Height", "Weight", "Types"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		for _, rec := range grp.Records {
			t.AppendRow(table.Row{
				rec.ID,
				titleCase(rec.Name),
				fmt.Sprintf("%.1f m", rec.HeightMeters()),
				fmt.Sprintf("%.1f kg", rec.WeightKilograms()),
				strings.Join(rec.Categories, ", "),
			})
		}
		b.WriteString(t.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}

// renderRecord prints a single record as a two-column table.
func renderRecord(rec catalog.Record) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(titleCase(rec.Name))
	t.AppendRows([]table.Row{
		{"Number", rec.ID},
		{"Types", strings.Join(rec.Categories, ", ")},
		{"Height", fmt.Sprintf("%.1f m", rec.HeightMeters())},
		{"Weight", fmt.Sprintf("%.1f kg", rec.WeightKilograms())},
		{"Sprite", spriteOrNone(rec.SpriteURL)},
	})
	return t.Render() + "\n"
}

// renderLogs prints log entries oldest first.
func renderLogs(entries []logtail.Entry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Level", "Message", "Fields"})
	for _, e := range entries {
		if e.Raw != "" {
			t.AppendRow(table.Row{"", "", e.Raw, ""})
			continue
		}
		t.AppendRow(table.Row{e.Time, strings.ToUpper(e.Level), e.Message, e.FieldString()})
	}
	return t.Render() + "\n"
}

func titleCase(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

func spriteOrNone(url string) string {
	if strings.TrimSpace(url) == "" {
		return "none"
	}
	return url
}
