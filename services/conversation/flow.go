// File: services/conversation/flow.go
package conversation

import (
	"fmt"
	"strings"

	"hotelbot/models"

	"go.uber.org/zap"
)

// FlowController decides how the dialogue proceeds after each extraction
// cycle: surface a validation error, steer the model towards missing
// information, show the booking summary, finish the booking, or stay out of
// the way and let the model's own reply stand.
type FlowController struct {
	Validator *BookingValidator
	Logger    *zap.Logger
}

func NewFlowController(validator *BookingValidator, logger *zap.Logger) *FlowController {
	return &FlowController{Validator: validator, Logger: logger}
}

// Decide maps the extracted state to a control decision. Branch order is
// fixed: validation errors preempt everything, and missing mandatory data
// blocks both the summary and the confirmation.
func (f *FlowController) Decide(state *models.BookingState) models.ControlDecision {
	if err := f.Validator.Validate(state); err != nil {
		f.Logger.Info("validation failed", zap.String("message", err.Message))
		return models.ControlDecision{MsgToUser: err.Message}
	}

	missing, hasMissing := state.FirstMissing()
	summaryPending := state.SummaryPending()
	confirmAttempt := state.UserConfirmed()

	switch {
	case hasMissing && (summaryPending || confirmAttempt):
		// Steer the model; the user never sees this instruction.
		f.Logger.Info("mandatory information missing", zap.String("attribute", missing.Label))
		return models.ControlDecision{
			MsgToModel: fmt.Sprintf("Ask the user for the following information: %s.", missing.Label),
		}
	case !hasMissing && confirmAttempt:
		return models.ControlDecision{
			MsgToUser: fmt.Sprintf(
				"Thank you for choosing our hotel. A booking confirmation was sent to %s. Have a great day!",
				state.Email.RawText()),
			BookingFinished: true,
		}
	case !hasMissing && summaryPending:
		return models.ControlDecision{MsgToUser: f.summary(state)}
	}
	return models.ControlDecision{}
}

// summary renders the booking summary with all gathered fields, the
// computed total and a confirmation prompt.
func (f *FlowController) summary(state *models.BookingState) string {
	breakfast := "no"
	if state.Breakfast.HasValue() && *state.Breakfast.Value {
		breakfast = "yes"
	}

	price := "to be determined"
	if total, ok := CalculatePrice(state); ok {
		price = FormatPrice(total)
	}

	var b strings.Builder
	b.WriteString("Here is your booking summary:\n")
	fmt.Fprintf(&b, "Date of arrival: %s\n", state.ArrivalDate.Value.Format("Monday, 02 Jan 2006"))
	fmt.Fprintf(&b, "Duration of stay: %d night(s)\n", int(*state.StayNights.Value))
	fmt.Fprintf(&b, "Number of guests: %d\n", int(*state.GuestCount.Value))
	fmt.Fprintf(&b, "Name of main guest: %s\n", *state.GuestName.Value)
	fmt.Fprintf(&b, "Email address: %s\n", *state.Email.Value)
	fmt.Fprintf(&b, "Breakfast included: %s\n", breakfast)
	fmt.Fprintf(&b, "Total price: %s\n", price)
	fmt.Fprintf(&b, "Check in time is %s, check out time is %s.\n", checkInTime, checkOutTime)
	b.WriteString("Would you like to confirm the booking?")
	return b.String()
}
