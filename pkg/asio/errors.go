package asio

import (
	"errors"
	"fmt"
)

// Error is an ASIO status code returned by a driver call.
type Error int32

// ASIO status codes.
const (
	OK               Error = 0
	SuccessFuture    Error = 0x3f4847a0
	NotPresent       Error = -1000
	HWMalfunction    Error = -999
	InvalidParameter Error = -998
	InvalidMode      Error = -997
	SPNotAdvancing   Error = -996
	NoClock          Error = -995
	NoMemory         Error = -994
)

// String returns the human readable description of the status code.
func (e Error) String() string {
	switch e {
	case OK:
		return "no error"
	case SuccessFuture:
		return "success (future)"
	case NotPresent:
		return "not present"
	case HWMalfunction:
		return "hardware malfunction"
	case InvalidParameter:
		return "invalid parameter"
	case InvalidMode:
		return "invalid mode"
	case SPNotAdvancing:
		return "sample position not advancing"
	case NoClock:
		return "no clock"
	case NoMemory:
		return "no memory"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.String() == "unknown" {
		return fmt.Sprintf("asio: unknown error %d", int32(e))
	}
	return "asio: " + e.String()
}

// Succeeded reports whether e is a success code.
func (e Error) Succeeded() bool {
	return e == OK || e == SuccessFuture
}

// Result converts a raw status into an error, nil for success codes.
func Result(code int32) error {
	if e := Error(code); !e.Succeeded() {
		return e
	}
	return nil
}

// ErrorString describes the outcome of a driver call the way a host reports
// it to the user: "no error" for nil, the status description for an Error,
// and the error text otherwise.
func ErrorString(err error) string {
	if err == nil {
		return OK.String()
	}
	var code Error
	if errors.As(err, &code) {
		return code.String()
	}
	return err.Error()
}
