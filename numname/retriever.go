package numname

// UnitNameRetriever returns the name of a unit, an integer in [0,19].
// Implementations are stateless; a converter calls GetName once per
// conversion that needs a unit name.
type UnitNameRetriever interface {
	GetName(unit int) string
}

// UnitNameFunc adapts an ordinary function to UnitNameRetriever.
type UnitNameFunc func(unit int) string

func (f UnitNameFunc) GetName(unit int) string {
	return f(unit)
}

// englishUnits holds the unit names. Zero has no name of its own.
var englishUnits = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// EnglishUnits is the static lookup table retriever for English.
type EnglishUnits struct{}

// GetName returns "" for units outside [0,19].
func (EnglishUnits) GetName(unit int) string {
	if unit < 0 || unit >= len(englishUnits) {
		return ""
	}
	return englishUnits[unit]
}
