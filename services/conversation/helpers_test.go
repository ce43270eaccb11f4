package conversation

import (
	"time"

	"hotelbot/models"
)

func strp(s string) *string        { return &s }
func f64p(f float64) *float64      { return &f }
func boolp(b bool) *bool           { return &b }
func timep(t time.Time) *time.Time { return &t }

// fixedNow is the reference clock used by validator and flow tests.
var fixedNow = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

// completeState returns a state with every mandatory attribute extracted
// and normalized, arriving one week after fixedNow.
func completeState() *models.BookingState {
	return &models.BookingState{
		ArrivalDate: models.Entry[time.Time]{Raw: strp("8th of September"), Value: timep(fixedNow.AddDate(0, 0, 7))},
		StayNights:  models.Entry[float64]{Raw: strp("2 nights"), Value: f64p(2)},
		GuestCount:  models.Entry[float64]{Raw: strp("2"), Value: f64p(2)},
		GuestName:   models.Entry[string]{Raw: strp("Detlef Doedel"), Value: strp("Detlef Doedel")},
		Email:       models.Entry[string]{Raw: strp("detlef@example.com"), Value: strp("detlef@example.com")},
		Breakfast:   models.Entry[bool]{Raw: strp("yes"), Value: boolp(true)},
		ShowSummary: models.Entry[bool]{Raw: strp("no"), Value: boolp(false)},
		Confirmed:   models.Entry[bool]{Raw: strp("no"), Value: boolp(false)},
	}
}

func testValidator() *BookingValidator {
	v := NewBookingValidator()
	v.Now = func() time.Time { return fixedNow }
	return v
}
