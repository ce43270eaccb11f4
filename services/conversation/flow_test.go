package conversation

import (
	"testing"
	"time"

	"hotelbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testFlow(t *testing.T) *FlowController {
	t.Helper()
	return NewFlowController(testValidator(), zaptest.NewLogger(t))
}

func TestFlowController_ValidationErrorPreemptsEverything(t *testing.T) {
	state := completeState()
	state.GuestCount = models.Entry[float64]{Raw: strp("a few")}
	state.Confirmed.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.Equal(t, "Sorry, I didn't understand. How many guests will stay at our hotel?", d.MsgToUser)
	assert.Empty(t, d.MsgToModel)
	assert.False(t, d.BookingFinished)
}

func TestFlowController_MissingInfoBlocksSummary(t *testing.T) {
	state := completeState()
	state.Email = models.Entry[string]{}
	state.ShowSummary.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.Empty(t, d.MsgToUser)
	assert.Equal(t, "Ask the user for the following information: Email address.", d.MsgToModel)
	assert.False(t, d.BookingFinished)
}

func TestFlowController_MissingInfoBlocksConfirmation(t *testing.T) {
	state := completeState()
	state.Breakfast = models.Entry[bool]{}
	state.Confirmed.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.Equal(t, "Ask the user for the following information: Breakfast included.", d.MsgToModel)
	assert.False(t, d.BookingFinished)
}

func TestFlowController_MissingInfoIsDeterministic(t *testing.T) {
	// Arrival date precedes email in the attribute order, so it is the one
	// the model is asked about.
	state := completeState()
	state.ArrivalDate = models.Entry[time.Time]{}
	state.Email = models.Entry[string]{}
	state.ShowSummary.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.Equal(t, "Ask the user for the following information: Date of arrival.", d.MsgToModel)
}

func TestFlowController_MissingInfoWithoutSummaryIntentIsNoOp(t *testing.T) {
	// Mid-dialogue gaps are normal; the model keeps asking on its own.
	state := completeState()
	state.Email = models.Entry[string]{}

	d := testFlow(t).Decide(state)

	assert.True(t, d.IsNoOp())
}

func TestFlowController_Confirmation(t *testing.T) {
	state := completeState()
	state.Confirmed.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.Equal(t,
		"Thank you for choosing our hotel. A booking confirmation was sent to detlef@example.com. Have a great day!",
		d.MsgToUser)
	assert.True(t, d.BookingFinished)
	assert.Empty(t, d.MsgToModel)
}

func TestFlowController_ConfirmationWinsOverSummary(t *testing.T) {
	// Only one branch fires per turn; confirmation outranks the summary.
	state := completeState()
	state.Confirmed.Value = boolp(true)
	state.ShowSummary.Value = boolp(true)

	d := testFlow(t).Decide(state)

	assert.True(t, d.BookingFinished)
	assert.NotContains(t, d.MsgToUser, "booking summary")
}

func TestFlowController_Summary(t *testing.T) {
	state := completeState()
	state.ShowSummary.Value = boolp(true)

	d := testFlow(t).Decide(state)

	require.NotEmpty(t, d.MsgToUser)
	assert.False(t, d.BookingFinished)
	assert.Contains(t, d.MsgToUser, "Detlef Doedel")
	assert.Contains(t, d.MsgToUser, "detlef@example.com")
	assert.Contains(t, d.MsgToUser, "2 night(s)")
	assert.Contains(t, d.MsgToUser, "$240.00")
	assert.Contains(t, d.MsgToUser, "Check in time is 2pm, check out time is 10am.")
	assert.Contains(t, d.MsgToUser, "Would you like to confirm the booking?")
}

func TestFlowController_QuietTurnPassesThrough(t *testing.T) {
	d := testFlow(t).Decide(completeState())

	assert.True(t, d.IsNoOp())
	assert.False(t, d.BookingFinished)
}

func TestFlowController_FreshStateIsNoOp(t *testing.T) {
	d := testFlow(t).Decide(&models.BookingState{})

	assert.True(t, d.IsNoOp())
}
