package models

import "time"

// Dimension is the semantic type tag governing how an attribute's raw text
// is normalized into a typed value.
type Dimension uint8

const (
	DimTime Dimension = iota
	DimDuration
	DimNumber
	DimText
	DimEmail
	DimBool
)

func (d Dimension) String() string {
	switch d {
	case DimTime:
		return "time"
	case DimDuration:
		return "duration"
	case DimNumber:
		return "number"
	case DimText:
		return "text"
	case DimEmail:
		return "email"
	case DimBool:
		return "bool"
	}
	return "unknown"
}

// AttributeID identifies one tracked booking fact.
type AttributeID uint8

const (
	AttrArrivalDate AttributeID = iota
	AttrStayNights
	AttrGuestCount
	AttrGuestName
	AttrEmail
	AttrBreakfast
	AttrShowSummary
	AttrConfirmed
)

// Attribute is the static definition of one tracked fact: how its row is
// located in the model-produced table and how its value is normalized.
type Attribute struct {
	ID        AttributeID
	Dim       Dimension
	Keywords  []string // lowercase; a row must contain all of them
	Label     string
	Mandatory bool
}

// BookingAttributes is the fixed, ordered catalog of tracked attributes.
// The order matters: missing-information detection reports the first
// mandatory attribute without a value, in this order.
var BookingAttributes = []Attribute{
	{ID: AttrArrivalDate, Dim: DimTime, Keywords: []string{"date", "arrival"}, Label: "Date of arrival", Mandatory: true},
	{ID: AttrStayNights, Dim: DimDuration, Keywords: []string{"duration"}, Label: "Duration of stay", Mandatory: true},
	{ID: AttrGuestCount, Dim: DimNumber, Keywords: []string{"number", "guest"}, Label: "Number of guests", Mandatory: true},
	{ID: AttrGuestName, Dim: DimText, Keywords: []string{"name", "guest"}, Label: "The name of the main guest", Mandatory: true},
	{ID: AttrEmail, Dim: DimEmail, Keywords: []string{"email"}, Label: "Email address", Mandatory: true},
	{ID: AttrBreakfast, Dim: DimBool, Keywords: []string{"breakfast"}, Label: "Breakfast included", Mandatory: true},
	{ID: AttrShowSummary, Dim: DimBool, Keywords: []string{"booking summary", "show"}, Label: ""},
	{ID: AttrConfirmed, Dim: DimBool, Keywords: []string{"confirm"}, Label: ""},
}

// AttributeByID returns the catalog definition for the given ID.
func AttributeByID(id AttributeID) Attribute {
	for _, a := range BookingAttributes {
		if a.ID == id {
			return a
		}
	}
	return Attribute{}
}

// Entry pairs the verbatim phrase extracted from the state table with its
// normalized, typed value. Value is only ever set when Raw is set; Raw
// without Value marks an extraction failure the validator reports on.
type Entry[T any] struct {
	Raw   *string
	Value *T
}

func (e Entry[T]) HasRaw() bool   { return e.Raw != nil }
func (e Entry[T]) HasValue() bool { return e.Value != nil }

// RawText returns the raw phrase or the empty string.
func (e Entry[T]) RawText() string {
	if e.Raw == nil {
		return ""
	}
	return *e.Raw
}

// BookingState is the typed conversation state for one turn. It is rebuilt
// from scratch on every extraction cycle and never mutated across turns.
type BookingState struct {
	ArrivalDate Entry[time.Time]
	StayNights  Entry[float64]
	GuestCount  Entry[float64]
	GuestName   Entry[string]
	Email       Entry[string]
	Breakfast   Entry[bool]
	ShowSummary Entry[bool]
	Confirmed   Entry[bool]
}

// EntryInfo is a read-only, type-erased view of one entry, used where code
// has to walk all attributes in catalog order.
type EntryInfo struct {
	Attr     Attribute
	Raw      *string
	HasValue bool
}

// Entries returns views of all entries in catalog order.
func (s *BookingState) Entries() []EntryInfo {
	return []EntryInfo{
		{Attr: AttributeByID(AttrArrivalDate), Raw: s.ArrivalDate.Raw, HasValue: s.ArrivalDate.HasValue()},
		{Attr: AttributeByID(AttrStayNights), Raw: s.StayNights.Raw, HasValue: s.StayNights.HasValue()},
		{Attr: AttributeByID(AttrGuestCount), Raw: s.GuestCount.Raw, HasValue: s.GuestCount.HasValue()},
		{Attr: AttributeByID(AttrGuestName), Raw: s.GuestName.Raw, HasValue: s.GuestName.HasValue()},
		{Attr: AttributeByID(AttrEmail), Raw: s.Email.Raw, HasValue: s.Email.HasValue()},
		{Attr: AttributeByID(AttrBreakfast), Raw: s.Breakfast.Raw, HasValue: s.Breakfast.HasValue()},
		{Attr: AttributeByID(AttrShowSummary), Raw: s.ShowSummary.Raw, HasValue: s.ShowSummary.HasValue()},
		{Attr: AttributeByID(AttrConfirmed), Raw: s.Confirmed.Raw, HasValue: s.Confirmed.HasValue()},
	}
}

// FirstMissing returns the first mandatory attribute, in catalog order,
// whose value is absent.
func (s *BookingState) FirstMissing() (Attribute, bool) {
	for _, e := range s.Entries() {
		if e.Attr.Mandatory && !e.HasValue {
			return e.Attr, true
		}
	}
	return Attribute{}, false
}

// SummaryPending reports whether the assistant is about to show a booking summary.
func (s *BookingState) SummaryPending() bool {
	return s.ShowSummary.HasValue() && *s.ShowSummary.Value
}

// UserConfirmed reports whether the user just confirmed the booking summary.
func (s *BookingState) UserConfirmed() bool {
	return s.Confirmed.HasValue() && *s.Confirmed.Value
}
