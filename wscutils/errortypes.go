package wscutils

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	errorTypesMu sync.RWMutex

	// errorTypes maps an errcode to its message ID.
	errorTypes = map[string]int{
		ErrcodeUnknown:       MsgIDUnknown,
		ErrcodeInvalidJson:   MsgIDInvalidJson,
		ErrcodeInvalidNumber: MsgIDInvalidNumber,
		ErrcodeInvalidMode:   MsgIDInvalidMode,
		ErrcodeOutOfRange:    MsgIDOutOfRange,
		ErrcodeMissing:       MsgIDMissing,
		ErrcodeTimeout:       MsgIDTimeout,
		"required":           MsgIDMissing,
		"min":                MsgIDMin,
		"max":                MsgIDMax,
	}
)

// LoadErrorTypes reads a YAML mapping of errcode to message ID and merges it
// over the defaults. Example file:
//
//	invalid_number: 2001
//	min: 2002
func LoadErrorTypes(r io.Reader) error {
	byteValue, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read error types: %w", err)
	}

	loaded := map[string]int{}
	if err := yaml.Unmarshal(byteValue, &loaded); err != nil {
		return fmt.Errorf("failed to parse error types: %w", err)
	}

	errorTypesMu.Lock()
	defer errorTypesMu.Unlock()
	for errcode, msgid := range loaded {
		errorTypes[errcode] = msgid
	}
	return nil
}

// MsgID returns the message ID for errcode and whether it is known.
func MsgID(errcode string) (int, bool) {
	errorTypesMu.RLock()
	defer errorTypesMu.RUnlock()
	msgid, ok := errorTypes[errcode]
	return msgid, ok
}
