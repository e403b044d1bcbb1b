package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
)

func TestParseWeeklyHours(t *testing.T) {
	t.Run("standard ranges", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Monday": "9AM-5PM", "Tuesday": "10:30AM-6PM", "Wednesday": "9 to 17"}`)

		require.False(t, hours.Monday.Closed)
		assert.Equal(t, "09:00", hours.Monday.Open)
		assert.Equal(t, "17:00", hours.Monday.Close)

		require.False(t, hours.Tuesday.Closed)
		assert.Equal(t, "10:30", hours.Tuesday.Open)
		assert.Equal(t, "18:00", hours.Tuesday.Close)

		require.False(t, hours.Wednesday.Closed)
		assert.Equal(t, "09:00", hours.Wednesday.Open)
		assert.Equal(t, "17:00", hours.Wednesday.Close)
	})

	t.Run("en dash and spacing variants", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Friday": "11 AM – 9 PM"}`)
		require.False(t, hours.Friday.Closed)
		assert.Equal(t, "11:00", hours.Friday.Open)
		assert.Equal(t, "21:00", hours.Friday.Close)
	})

	t.Run("noon and midnight", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Saturday": "12AM-12PM"}`)
		require.False(t, hours.Saturday.Closed)
		assert.Equal(t, "00:00", hours.Saturday.Open)
		assert.Equal(t, "12:00", hours.Saturday.Close)
	})

	t.Run("open 24 hours", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Sunday": "Open 24 hours"}`)
		require.False(t, hours.Sunday.Closed)
		assert.Equal(t, "00:00", hours.Sunday.Open)
		assert.Equal(t, "23:59", hours.Sunday.Close)
	})

	t.Run("explicit closed", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Monday": "Closed", "Tuesday": "closed"}`)
		assert.True(t, hours.Monday.Closed)
		assert.True(t, hours.Tuesday.Closed)
	})

	t.Run("unparseable day closes only that day", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Monday": "whenever", "Tuesday": "9AM-5PM"}`)
		assert.True(t, hours.Monday.Closed)
		require.False(t, hours.Tuesday.Closed)
		assert.Equal(t, "09:00", hours.Tuesday.Open)
	})

	t.Run("missing days stay closed", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Monday": "9AM-5PM"}`)
		assert.False(t, hours.Monday.Closed)
		assert.True(t, hours.Tuesday.Closed)
		assert.True(t, hours.Sunday.Closed)
	})

	t.Run("garbage input yields closed week", func(t *testing.T) {
		for _, blob := range []string{"", "{}", "not json", `["Monday"]`, `{"Monday": 5}`} {
			assert.Equal(t, store.AllClosed(), store.ParseWeeklyHours(blob), "blob %q", blob)
		}
	})

	t.Run("three part range is rejected", func(t *testing.T) {
		hours := store.ParseWeeklyHours(`{"Monday": "9AM-1PM-5PM"}`)
		assert.True(t, hours.Monday.Closed)
	})
}

func TestAllClosed(t *testing.T) {
	hours := store.AllClosed()
	for _, day := range []store.DayHours{
		hours.Monday, hours.Tuesday, hours.Wednesday, hours.Thursday,
		hours.Friday, hours.Saturday, hours.Sunday,
	} {
		assert.True(t, day.Closed)
		assert.Empty(t, day.Open)
		assert.Empty(t, day.Close)
	}
}
