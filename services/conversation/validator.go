// File: services/conversation/validator.go
package conversation

import (
	"math"
	"strings"
	"time"

	"hotelbot/models"
)

// parseErrorMessages maps attributes with a user-facing remediation prompt
// for failed extraction. Attributes missing here fail silently and get
// resolved in a later turn instead.
var parseErrorMessages = map[models.AttributeID]string{
	models.AttrArrivalDate: "Sorry, I didn't understand. Could you please provide the date of your arrival?",
	models.AttrStayNights:  "Could you please tell me how many nights you will stay?",
	models.AttrGuestCount:  "Sorry, I didn't understand. How many guests will stay at our hotel?",
	models.AttrEmail:       "Your email address is invalid. Could you please enter your correct email address?",
}

// ValidationError carries the single user-facing message for this turn.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BookingValidator runs ordered structural and semantic checks over a
// booking state and yields at most one blocking error. Checks short-circuit:
// a garbled date is reported before later checks run on meaningless data.
type BookingValidator struct {
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{Now: time.Now}
}

// Validate returns nil when the state is acceptable.
func (v *BookingValidator) Validate(state *models.BookingState) *ValidationError {
	if err := v.checkExtractionFailures(state); err != nil {
		return err
	}
	if err := v.checkArrivalNotPast(state); err != nil {
		return err
	}
	if err := v.checkNameShape(state); err != nil {
		return err
	}
	if err := v.checkWholeNumber(state.GuestCount, "The number of guests must be a whole number."); err != nil {
		return err
	}
	return v.checkWholeNumber(state.StayNights, "The duration of stay must be a whole number of nights.")
}

// checkExtractionFailures reports the first attribute, in catalog order,
// whose raw phrase could not be normalized.
func (v *BookingValidator) checkExtractionFailures(state *models.BookingState) *ValidationError {
	for _, e := range state.Entries() {
		msg, ok := parseErrorMessages[e.Attr.ID]
		if !ok {
			continue
		}
		if e.Raw != nil && !e.HasValue {
			return &ValidationError{Message: msg}
		}
	}
	return nil
}

// checkArrivalNotPast compares the arrival day, in the value's own time
// zone, against the start of the current day in that zone.
func (v *BookingValidator) checkArrivalNotPast(state *models.BookingState) *ValidationError {
	if !state.ArrivalDate.HasValue() {
		return nil
	}
	arrival := *state.ArrivalDate.Value
	loc := arrival.Location()
	arrivalDay := time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, loc)
	now := v.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if arrivalDay.Before(today) {
		return &ValidationError{Message: "The booking date must not lie in the past."}
	}
	return nil
}

func (v *BookingValidator) checkNameShape(state *models.BookingState) *ValidationError {
	if !state.GuestName.HasValue() {
		return nil
	}
	name := *state.GuestName.Value
	if len(strings.Split(name, " ")) < 2 || len(name) < 5 {
		return &ValidationError{Message: "Please tell me your first and last name."}
	}
	return nil
}

func (v *BookingValidator) checkWholeNumber(e models.Entry[float64], msg string) *ValidationError {
	if e.HasValue() && *e.Value != math.Trunc(*e.Value) {
		return &ValidationError{Message: msg}
	}
	return nil
}
