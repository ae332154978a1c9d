package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bidmart/bidengine/internal/domain"
)

func TestStatusBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		bids     []domain.Bid
		expected StatusCounts
	}{
		{
			name:     "No bids",
			bids:     nil,
			expected: StatusCounts{},
		},
		{
			name: "Mixed statuses",
			bids: []domain.Bid{
				{Response: domain.ApprovedResponse},
				{Response: domain.ApprovedResponse},
				{Response: domain.PendingResponse},
				{Response: domain.RejectedResponse},
			},
			expected: StatusCounts{Approved: 2, Pending: 1, Rejected: 1, Total: 4},
		},
		{
			name: "Only pending",
			bids: []domain.Bid{
				{Response: domain.PendingResponse},
			},
			expected: StatusCounts{Pending: 1, Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusBreakdown(tt.bids))
		})
	}
}

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Always exactly the window size, oldest first", func(t *testing.T) {
		buckets := MonthlyBuckets(nil, 6, now)
		assert.Len(t, buckets, 6)
		assert.Equal(t, "Feb", buckets[0].Label)
		assert.Equal(t, "Jul", buckets[5].Label)
		for _, b := range buckets {
			assert.Zero(t, b.Count)
		}
	})

	t.Run("Dates fall into their calendar month", func(t *testing.T) {
		dates := []time.Time{
			time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		}
		buckets := MonthlyBuckets(dates, 6, now)
		assert.Equal(t, 2, buckets[5].Count)
		assert.Equal(t, 1, buckets[4].Count)
	})

	t.Run("Dates before the window are excluded, not clipped", func(t *testing.T) {
		dates := []time.Time{
			time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
		}
		buckets := MonthlyBuckets(dates, 6, now)
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, 1, total)
		assert.Equal(t, 1, buckets[0].Count)
	})

	t.Run("Window crosses a year boundary", func(t *testing.T) {
		febNow := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
		dates := []time.Time{
			time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		}
		buckets := MonthlyBuckets(dates, 6, febNow)
		assert.Equal(t, "Sep", buckets[0].Label)
		assert.Equal(t, 1, buckets[2].Count)
		assert.Equal(t, 1, buckets[4].Count)
	})

	t.Run("Non-positive window", func(t *testing.T) {
		assert.Empty(t, MonthlyBuckets(nil, 0, now))
	})
}

func TestMonthlyEarnings(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	records := []domain.EarningsRecord{
		{Amount: 100, CreatedAt: time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)},
		{Amount: 250, CreatedAt: time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: 300, CreatedAt: time.Date(2025, time.May, 9, 0, 0, 0, 0, time.UTC)},
		{Amount: 999, CreatedAt: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyEarnings(records, 6, now)
	assert.Len(t, buckets, 6)
	assert.Equal(t, int64(350), buckets[5].Amount)
	assert.Equal(t, int64(300), buckets[3].Amount)
	assert.Equal(t, int64(0), buckets[0].Amount)
}

func TestRevenueSeries(t *testing.T) {
	early := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.EarningsRecord{
		{Amount: 200, CreatedAt: late},
		{Amount: 100, CreatedAt: early},
	}

	points := RevenueSeries(records)
	assert.Len(t, points, 2)
	assert.Equal(t, int64(100), points[0].Amount)
	assert.Equal(t, int64(200), points[1].Amount)
	assert.True(t, points[0].Date.Before(points[1].Date))
}

func TestMonthGrowth(t *testing.T) {
	now := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dates    []time.Time
		expected float64
	}{
		{
			name:     "Nothing either month",
			dates:    nil,
			expected: 0,
		},
		{
			name:     "Growth from zero counts as full jump",
			dates:    []time.Time{thisMonth, thisMonth},
			expected: 100,
		},
		{
			name:     "Doubled against last month",
			dates:    []time.Time{thisMonth, thisMonth, lastMonth},
			expected: 100,
		},
		{
			name:     "Dropped to zero",
			dates:    []time.Time{lastMonth, lastMonth},
			expected: -100,
		},
		{
			name:     "Half of last month",
			dates:    []time.Time{thisMonth, lastMonth, lastMonth},
			expected: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MonthGrowth(tt.dates, now), 0.001)
		})
	}
}
