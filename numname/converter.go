package numname

import "fmt"

const (
	MinNumber = 0
	MaxNumber = 9999
)

// tens names the multiples of ten. Indices 0 and 1 are placeholders.
// "fourty" is a known misspelling kept for compatibility with existing
// callers.
var tens = [...]string{
	"", "", "twenty", "thirty", "fourty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// ScaleTier is a threshold at which a name becomes "<digit-name> <word>".
type ScaleTier struct {
	Divisor int
	Word    string
}

// tiers is evaluated in order, so it must stay sorted by descending divisor.
var tiers = [...]ScaleTier{
	{Divisor: 1000, Word: "thousand"},
	{Divisor: 100, Word: "hundred"},
}

// Tens returns a copy of the names of the multiples of ten, indexed by
// number/10.
func Tens() []string {
	return append([]string(nil), tens[:]...)
}

// Units returns a copy of the unit names used by EnglishUnits.
func Units() []string {
	return append([]string(nil), englishUnits[:]...)
}

// Tiers returns a copy of the scale tiers in the order GetName tries them.
func Tiers() []ScaleTier {
	return append([]ScaleTier(nil), tiers[:]...)
}

const (
	TierUnit = "unit"
	TierTens = "tens"
)

// Converter names numbers. The zero value is not usable; construct one with
// NewConverter. A Converter is safe for concurrent use as long as its
// retriever is.
type Converter struct {
	retriever UnitNameRetriever
}

func NewConverter(r UnitNameRetriever) *Converter {
	return &Converter{retriever: r}
}

// NewEnglishConverter returns a Converter backed by the EnglishUnits table.
func NewEnglishConverter() *Converter {
	return NewConverter(EnglishUnits{})
}

// GetName returns the name of number. It never fails: numbers outside
// [MinNumber, MaxNumber] or with a remainder below their tier give a partial
// or empty name. Use Name for range checking.
func (c *Converter) GetName(number int) string {
	for _, tier := range tiers {
		if number >= tier.Divisor {
			return c.scaledName(number, tier)
		}
	}
	if number < len(englishUnits) {
		return c.retriever.GetName(number)
	}
	return tens[number/10]
}

func (c *Converter) scaledName(number int, tier ScaleTier) string {
	unitName := c.retriever.GetName(number / tier.Divisor)
	return fmt.Sprintf("%s %s", unitName, tier.Word)
}

// Name is GetName with a range check. It returns an error matching
// ErrInvalidArgument for numbers below MinNumber or above MaxNumber.
func (c *Converter) Name(number int) (string, error) {
	if err := checkRange(number); err != nil {
		return "", err
	}
	return c.GetName(number), nil
}

// Tier reports which branch of GetName handles number: a scale tier word,
// TierUnit or TierTens.
func Tier(number int) string {
	for _, tier := range tiers {
		if number >= tier.Divisor {
			return tier.Word
		}
	}
	if number < len(englishUnits) {
		return TierUnit
	}
	return TierTens
}
