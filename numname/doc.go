// Package numname converts non-negative integers into their English names,
// for example 200 into "two hundred".
//
// A Converter delegates the names of units (0 to 19) to an injected
// UnitNameRetriever and names tens from its own table. Numbers of one hundred
// or more are named by scale tier: the leading digit followed by the tier
// word, "hundred" or "thousand". Any remainder below the tier is not named,
// so 123 converts to "one hundred" and 47 to "fourty". Callers that need the
// complete name use FullName.
//
//	c := numname.NewEnglishConverter()
//	c.GetName(2000) // "two thousand"
package numname
