package datemath

// Indicator maps a relative date phrase to a day offset from "now".
type Indicator struct {
	Phrase string
	Offset int
}

// Indicators is the table of recognized relative phrases, evaluated in order.
// Longer phrases come first so "next week" can never match a shorter entry.
var Indicators = []Indicator{
	{Phrase: "next month", Offset: 30},
	{Phrase: "next week", Offset: 7},
	{Phrase: "tomorrow", Offset: 1},
	{Phrase: "today", Offset: 0},
}

// Offset returns the day offset for a relative phrase from the Indicators table.
func Offset(phrase string) (int, bool) {
	for _, ind := range Indicators {
		if ind.Phrase == phrase {
			return ind.Offset, true
		}
	}
	return 0, false
}
