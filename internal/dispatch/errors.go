// Package dispatch sends SMS through the modems of the configured SIM slots.
package dispatch

import "errors"

var (
	ErrInvalidNumber   = errors.New("invalid phone number")
	ErrNoSubscription  = errors.New("no SIM subscription available")
	ErrAlreadyInFlight = errors.New("message is already being sent")
	ErrUnknownSlot     = errors.New("no modem configured for slot")
)

// ResultCode is the radio outcome of a send.
type ResultCode string

const (
	ResultOK             ResultCode = "OK"
	ResultGenericFailure ResultCode = "GENERIC_FAILURE"
	ResultNoService      ResultCode = "NO_SERVICE"
	ResultNullPDU        ResultCode = "NULL_PDU"
	ResultRadioOff       ResultCode = "RADIO_OFF"
	ResultUnknown        ResultCode = "UNKNOWN"
)

func ParseResultCode(s string) ResultCode {
	switch ResultCode(s) {
	case ResultOK, ResultGenericFailure, ResultNoService, ResultNullPDU, ResultRadioOff:
		return ResultCode(s)
	case "SENT", "ACCEPTED", "QUEUED":
		return ResultOK
	default:
		return ResultUnknown
	}
}

// Reason is the log text for a failed result.
func (c ResultCode) Reason() string {
	switch c {
	case ResultOK:
		return "sent"
	case ResultGenericFailure:
		return "generic failure"
	case ResultNoService:
		return "no network service"
	case ResultNullPDU:
		return "null PDU"
	case ResultRadioOff:
		return "radio off"
	default:
		return "unknown error"
	}
}
