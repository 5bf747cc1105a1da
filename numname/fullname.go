package numname

import "github.com/divan/num2words"

// FullName returns the complete English name of number, including any
// remainder below its tier: 47 gives "forty-seven" and 1050 gives
// "one thousand fifty". Zero is "zero".
func FullName(number int) (string, error) {
	if err := checkRange(number); err != nil {
		return "", err
	}
	return num2words.Convert(number), nil
}
