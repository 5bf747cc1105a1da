package wscutils

const (
	ErrorStatus   = "error"
	SuccessStatus = "success"
)

const (
	ErrcodeUnknown       = "unknown"
	ErrcodeInvalidJson   = "invalid_json"
	ErrcodeInvalidNumber = "invalid_number"
	ErrcodeInvalidMode   = "invalid_mode"
	ErrcodeOutOfRange    = "out_of_range"
	ErrcodeMissing       = "missing"
	ErrcodeTimeout       = "request_timeout"
)

// Default message IDs, used until LoadErrorTypes replaces them.
const (
	MsgIDUnknown       = 9999
	MsgIDInvalidJson   = 1001
	MsgIDInvalidNumber = 1002
	MsgIDInvalidMode   = 1003
	MsgIDOutOfRange    = 1004
	MsgIDMissing       = 1005
	MsgIDMin           = 1006
	MsgIDMax           = 1007
	MsgIDTimeout       = 1008
)
