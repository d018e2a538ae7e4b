package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayadmin/internal/domain/media"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func TestSplitCombine(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		date  string
		clock string
		wire  string
	}{
		{name: "morning", raw: "2024-05-01T03:30:00.000Z", date: "2024-05-01", clock: "09:00", wire: "2024-05-01T03:30:00.000Z"},
		{name: "next day in zone", raw: "2024-06-10T18:45:00Z", date: "2024-06-11", clock: "00:15", wire: "2024-06-10T18:45:00.000Z"},
		{name: "afternoon", raw: "2024-12-31T09:00:00.000Z", date: "2024-12-31", clock: "14:30", wire: "2024-12-31T09:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock, err := Split(tt.raw, ist)
			require.NoError(t, err)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.clock, clock)

			wire, err := Combine(date, clock, ist)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, wire)
		})
	}
}

func TestSplit_Invalid(t *testing.T) {
	_, _, err := Split("yesterday", ist)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestCombine_Invalid(t *testing.T) {
	_, err := Combine("2024-02-30", "10:00", ist)
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	_, err = Combine("", "", ist)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestToPayload_KeepsStoredValueWhenUnchanged(t *testing.T) {
	ev := Event{ID: "e1", Heading: "Yoga", Image: "yoga.jpg", EventDate: "2024-06-10T18:45:00Z"}
	d := ToDraft(ev, media.NewURLs("https://api.test"), ist)

	payload, err := d.ToPayload(d.Image, ist)
	require.NoError(t, err)
	assert.Equal(t, ev, payload)
}

func TestToPayload_RecombinesEditedValue(t *testing.T) {
	d := ToDraft(Event{ID: "e1", EventDate: "2024-05-01T03:30:00.000Z"}, media.NewURLs(""), ist)
	d.Time = "10:30"

	payload, err := d.ToPayload("", ist)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T05:00:00.000Z", payload.EventDate)
}

func TestToPayload_UnparsableStoredValue(t *testing.T) {
	d := ToDraft(Event{ID: "e1", EventDate: "soon"}, media.NewURLs(""), ist)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)

	payload, err := d.ToPayload("", ist)
	require.NoError(t, err)
	assert.Equal(t, "soon", payload.EventDate)

	d.Date, d.Time = "2024-01-02", "08:00"
	payload, err = d.ToPayload("", ist)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T02:30:00.000Z", payload.EventDate)
}

func TestToDraft_PreviewAlwaysStatic(t *testing.T) {
	d := ToDraft(Event{Image: "poster.png"}, media.NewURLs("https://api.test"), ist)
	assert.Equal(t, "https://api.test/static/poster.png", d.Preview)
}

func TestNewDraft(t *testing.T) {
	now := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	d := NewDraft(now, ist)

	assert.Equal(t, "2024-03-10", d.Date)
	assert.Equal(t, DefaultTime, d.Time)
	assert.Empty(t, d.ID)
	assert.NotEmpty(t, d.Key)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("subHeading")
	require.NoError(t, err)
	assert.Equal(t, FieldSubHeading, f)

	_, err = ParseField("image")
	assert.ErrorIs(t, err, ErrUnknownField)
}
