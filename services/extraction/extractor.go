// File: services/extraction/extractor.go
package extraction

import (
	"context"
	"strings"
	"time"

	"hotelbot/models"

	"go.uber.org/zap"
)

// defaultSentinels are the phrases meaning "no information given". Matching
// a sentinel is distinct from a normalization failure: the raw value is
// dropped entirely instead of being kept for an error message.
var defaultSentinels = []string{"not provided", "i don't know"}

// StateExtractor rebuilds a typed BookingState from the semi-structured
// table text the chat model produces. It holds no per-session state; one
// instance serves all sessions.
type StateExtractor struct {
	Normalizer EntityNormalizer
	Logger     *zap.Logger

	// Sentinels overrides defaultSentinels when non-nil. Compared lowercase.
	Sentinels []string
}

// NewStateExtractor wires an extractor over the given normalizer.
func NewStateExtractor(normalizer EntityNormalizer, logger *zap.Logger) *StateExtractor {
	return &StateExtractor{Normalizer: normalizer, Logger: logger}
}

// Extract derives a fresh BookingState from the table text. Attributes with
// no matching row, or whose row holds a sentinel phrase, come back absent.
// A raw phrase the normalizer cannot handle is kept with an absent value so
// the validator can report it.
func (x *StateExtractor) Extract(ctx context.Context, tableText string) *models.BookingState {
	table := ParseTable(tableText)
	state := &models.BookingState{}

	for _, attr := range models.BookingAttributes {
		row, ok := table.FindRow(attr.Keywords)
		if !ok {
			x.Logger.Warn("no table row matched attribute",
				zap.String("attribute", attr.Label),
				zap.String("dimension", attr.Dim.String()),
				zap.Strings("keywords", attr.Keywords))
			continue
		}
		raw := strings.TrimSpace(row)
		if raw == "" || x.isSentinel(raw) {
			continue
		}
		x.assign(ctx, state, attr, raw)
	}
	return state
}

func (x *StateExtractor) isSentinel(raw string) bool {
	sentinels := x.Sentinels
	if sentinels == nil {
		sentinels = defaultSentinels
	}
	lower := strings.ToLower(raw)
	for _, s := range sentinels {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// assign normalizes the raw phrase per the attribute's dimension and writes
// the typed entry. Normalizer errors are logged and degrade to "no value".
func (x *StateExtractor) assign(ctx context.Context, state *models.BookingState, attr models.Attribute, raw string) {
	switch attr.ID {
	case models.AttrArrivalDate:
		state.ArrivalDate.Raw = &raw
		state.ArrivalDate.Value = x.normalizeTime(ctx, raw)
	case models.AttrStayNights:
		state.StayNights.Raw = &raw
		state.StayNights.Value = x.normalizeDuration(ctx, raw)
	case models.AttrGuestCount:
		state.GuestCount.Raw = &raw
		state.GuestCount.Value = x.normalizeNumber(ctx, raw)
	case models.AttrGuestName:
		// Text entries carry the phrase verbatim.
		state.GuestName.Raw = &raw
		state.GuestName.Value = &raw
	case models.AttrEmail:
		state.Email.Raw = &raw
		state.Email.Value = x.normalizeEmail(ctx, raw)
	case models.AttrBreakfast:
		state.Breakfast.Raw = &raw
		state.Breakfast.Value = boolFromRaw(raw)
	case models.AttrShowSummary:
		state.ShowSummary.Raw = &raw
		state.ShowSummary.Value = boolFromRaw(raw)
	case models.AttrConfirmed:
		state.Confirmed.Raw = &raw
		state.Confirmed.Value = boolFromRaw(raw)
	}
}

// boolFromRaw treats any phrase containing "yes" as true; everything else,
// "no" included, is false rather than absent.
func boolFromRaw(raw string) *bool {
	b := strings.Contains(strings.ToLower(raw), "yes")
	return &b
}

func (x *StateExtractor) normalizeTime(ctx context.Context, raw string) *time.Time {
	v, err := x.Normalizer.ParseTime(ctx, raw)
	if err != nil {
		x.Logger.Error("time normalization failed", zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return v
}

func (x *StateExtractor) normalizeNumber(ctx context.Context, raw string) *float64 {
	v, err := x.Normalizer.ParseNumber(ctx, raw)
	if err != nil {
		x.Logger.Error("number normalization failed", zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return v
}

// normalizeDuration falls back to the number dimension when the duration
// lookup yields nothing, e.g. "2 nights" recognized only as the bare count.
// Normalizer errors count as "no result", so the fallback runs then too.
func (x *StateExtractor) normalizeDuration(ctx context.Context, raw string) *float64 {
	v, err := x.Normalizer.ParseDuration(ctx, raw)
	if err != nil {
		x.Logger.Error("duration normalization failed", zap.String("raw", raw), zap.Error(err))
	}
	if v != nil {
		return v
	}
	return x.normalizeNumber(ctx, raw)
}

func (x *StateExtractor) normalizeEmail(ctx context.Context, raw string) *string {
	v, err := x.Normalizer.ParseEmail(ctx, raw)
	if err != nil {
		x.Logger.Error("email normalization failed", zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return v
}
