package broker

import "fmt"

// ReasonCode is the gateway's classification of a check or send call.
// It is a closed enumeration over the wire codes the gateway emits; any
// value outside the known set is treated as unknown and fatal so new
// codes fail loudly instead of falling through.
type ReasonCode int

const (
	// ReasonLocalReject marks a request rejected by local validation
	// before any gateway call was made. It never appears on the wire.
	ReasonLocalReject ReasonCode = -1

	// ReasonCheckOK is the check-phase success code.
	ReasonCheckOK ReasonCode = 0

	// ReasonDone is the send-phase success code: the order was lodged.
	ReasonDone ReasonCode = 10009

	// ReasonPendingAccepted indicates a pending order was queued.
	ReasonPendingAccepted ReasonCode = 10008

	// ReasonInvalidVolume, ReasonInvalidPrice and ReasonInvalidStops are
	// validation rejects. They are recoverable: the cycle yields no trade
	// and the loop continues.
	ReasonInvalidVolume ReasonCode = 10014
	ReasonInvalidPrice  ReasonCode = 10015
	ReasonInvalidStops  ReasonCode = 10016

	// ReasonAlgoDisabled means algorithmic trading is switched off at the
	// gateway terminal. This is an operator-configuration problem; the
	// cycle loop must stop rather than retry.
	ReasonAlgoDisabled ReasonCode = 10027
)

func (rc ReasonCode) String() string {
	switch rc {
	case ReasonLocalReject:
		return "local-validation"
	case ReasonCheckOK:
		return "check-ok"
	case ReasonDone:
		return "done"
	case ReasonPendingAccepted:
		return "pending-accepted"
	case ReasonInvalidVolume:
		return "invalid-volume"
	case ReasonInvalidPrice:
		return "invalid-price"
	case ReasonInvalidStops:
		return "invalid-stops"
	case ReasonAlgoDisabled:
		return "algo-trading-disabled"
	default:
		return fmt.Sprintf("unknown(%d)", int(rc))
	}
}

// Accepted reports whether rc is a success code for the given phase.
func (rc ReasonCode) Accepted() bool {
	return rc == ReasonCheckOK || rc == ReasonDone || rc == ReasonPendingAccepted
}

// Recoverable reports whether rc is a validation reject the caller may
// log and move past. Fatal codes (algo disabled, unknown) are not
// recoverable.
func (rc ReasonCode) Recoverable() bool {
	switch rc {
	case ReasonInvalidVolume, ReasonInvalidPrice, ReasonInvalidStops:
		return true
	}
	return false
}
