// File: services/conversation/pricing.go
package conversation

import (
	"hotelbot/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// NightlyRoomRate is the room price per night in USD.
	NightlyRoomRate = 100
	// BreakfastRatePerGuestPerNight is the breakfast surcharge in USD.
	BreakfastRatePerGuestPerNight = 10
)

var pricePrinter = message.NewPrinter(language.English)

// CalculatePrice computes the total booking cost from the current state.
// It returns false while the duration of stay or the number of guests is
// still unknown; that is "not yet computable", not an error.
func CalculatePrice(state *models.BookingState) (float64, bool) {
	if !state.StayNights.HasValue() || !state.GuestCount.HasValue() {
		return 0, false
	}
	nights := *state.StayNights.Value
	guests := *state.GuestCount.Value

	breakfastRate := 0.0
	if state.Breakfast.HasValue() && *state.Breakfast.Value {
		breakfastRate = BreakfastRatePerGuestPerNight
	}
	return NightlyRoomRate*nights + breakfastRate*guests*nights, true
}

// FormatPrice renders a USD amount with two decimals and thousands
// separators, e.g. "$1,240.00".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%.2f", amount)
}
