package catalog

import "fmt"

// Generation is a fixed, named window of national dex numbers.
type Generation struct {
	Number int
	Name   string
	Start  int
	End    int
}

var generations = []Generation{
	{Number: 1, Name: "Kanto", Start: 1, End: 151},
	{Number: 2, Name: "Johto", Start: 152, End: 251},
	{Number: 3, Name: "Hoenn", Start: 252, End: 386},
	{Number: 4, Name: "Sinnoh", Start: 387, End: 493},
	{Number: 5, Name: "Unova", Start: 494, End: 649},
	{Number: 6, Name: "Kalos", Start: 650, End: 721},
	{Number: 7, Name: "Alola", Start: 722, End: 809},
	{Number: 8, Name: "Galar", Start: 810, End: 905},
	{Number: 9, Name: "Paldea", Start: 906, End: 1025},
}

// Generations returns the supported generations in order.
func Generations() []Generation {
	out := make([]Generation, len(generations))
	copy(out, generations)
	return out
}

// DefaultGeneration is the first enumerated generation.
func DefaultGeneration() Generation {
	return generations[0]
}

// GenerationByNumber looks up a generation by its 1-based number.
func GenerationByNumber(n int) (Generation, error) {
	if n < 1 || n > len(generations) {
		return Generation{}, fmt.Errorf("unknown generation %d (supported 1-%d)", n, len(generations))
	}
	return generations[n-1], nil
}

// Count is the number of entries in the window.
func (g Generation) Count() int {
	return g.End - g.Start + 1
}

// Offset is the zero-based roster offset of the first entry.
func (g Generation) Offset() int {
	return g.Start - 1
}

// Roman returns the generation number as a roman numeral.
func (g Generation) Roman() string {
	numerals := []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
	if g.Number > 0 && g.Number < len(numerals) {
		return numerals[g.Number]
	}
	return fmt.Sprintf("%d", g.Number)
}

// Next returns the following generation, wrapping to the first.
func (g Generation) Next() Generation {
	if g.Number >= len(generations) || g.Number < 1 {
		return generations[0]
	}
	return generations[g.Number]
}

// Prev returns the preceding generation, wrapping to the last.
func (g Generation) Prev() Generation {
	if g.Number <= 1 || g.Number > len(generations) {
		return generations[len(generations)-1]
	}
	return generations[g.Number-2]
}

func (g Generation) String() string {
	return fmt.Sprintf("Gen %s (%s #%d-%d)", g.Roman(), g.Name, g.Start, g.End)
}
