package numname

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error returned for a number outside
// the supported range.
var ErrInvalidArgument = errors.New("invalid argument")

type InvalidArgumentError struct {
	Number int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("number %d is out of range [%d,%d]", e.Number, MinNumber, MaxNumber)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func checkRange(number int) error {
	if number < MinNumber || number > MaxNumber {
		return &InvalidArgumentError{Number: number}
	}
	return nil
}
