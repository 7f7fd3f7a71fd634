package session

// ClearState is the state of the two-step clear-all confirmation.
type ClearState int

const (
	// Idle means no clear is pending.
	Idle ClearState = iota
	// PendingConfirm means one clear was requested and the next clear
	// request performs the deletion.
	PendingConfirm
)

func (s ClearState) String() string {
	if s == PendingConfirm {
		return "pending-confirm"
	}
	return "idle"
}

// RequestClear advances the machine for one clear request. It returns
// the next state and whether the caller should perform the deletion
// now. The first request only arms the confirmation; the second
// request fires it and returns the machine to Idle.
func RequestClear(state ClearState) (ClearState, bool) {
	if state == PendingConfirm {
		return Idle, true
	}
	return PendingConfirm, false
}

// Touch resets a pending confirmation when the user performs any other
// mutating action, so a stale warning can never arm a later clear.
func Touch(ClearState) ClearState {
	return Idle
}
