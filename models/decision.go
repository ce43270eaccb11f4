package models

// FlagBookingFinished marks the terminal turn of a conversation.
const FlagBookingFinished = "booking_finished"

// ControlDecision is the flow controller's verdict for one turn. At most one
// of MsgToUser / MsgToModel is set. When neither is set the model's own
// reply passes through unchanged.
type ControlDecision struct {
	MsgToUser       string
	MsgToModel      string
	BookingFinished bool
}

// IsNoOp reports whether the decision leaves the model reply untouched.
func (d ControlDecision) IsNoOp() bool {
	return d.MsgToUser == "" && d.MsgToModel == ""
}
