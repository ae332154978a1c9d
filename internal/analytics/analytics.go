// Package analytics holds the read-only dashboard projections. Everything
// here is a pure function over slices already loaded from the ledgers; no
// state, no storage, same output for same input.
package analytics

import (
	"sort"
	"time"

	"github.com/bidmart/bidengine/internal/domain"
)

type StatusCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

func StatusBreakdown(bids []domain.Bid) StatusCounts {
	counts := StatusCounts{Total: len(bids)}
	for _, bid := range bids {
		switch bid.Response {
		case domain.ApprovedResponse:
			counts.Approved++
		case domain.RejectedResponse:
			counts.Rejected++
		case domain.PendingResponse:
			counts.Pending++
		}
	}
	return counts
}

type MonthBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyBuckets counts dates per calendar month over the last monthsBack
// months ending at now's month. The result always has exactly monthsBack
// buckets, oldest first. Dates outside the window are excluded, never clipped
// into an edge bucket.
func MonthlyBuckets(dates []time.Time, monthsBack int, now time.Time) []MonthBucket {
	if monthsBack <= 0 {
		return []MonthBucket{}
	}

	buckets := make([]MonthBucket, monthsBack)
	for i := 0; i < monthsBack; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(monthsBack-1-i), 1, 0, 0, 0, 0, now.Location())
		buckets[i] = MonthBucket{Label: month.Format("Jan")}
		for _, d := range dates {
			if d.Year() == month.Year() && d.Month() == month.Month() {
				buckets[i].Count++
			}
		}
	}
	return buckets
}

type AmountBucket struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// MonthlyEarnings sums payment amounts per calendar month over the same
// window MonthlyBuckets uses.
func MonthlyEarnings(records []domain.EarningsRecord, monthsBack int, now time.Time) []AmountBucket {
	if monthsBack <= 0 {
		return []AmountBucket{}
	}

	buckets := make([]AmountBucket, monthsBack)
	for i := 0; i < monthsBack; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(monthsBack-1-i), 1, 0, 0, 0, 0, now.Location())
		buckets[i] = AmountBucket{Label: month.Format("Jan")}
		for _, record := range records {
			if record.CreatedAt.Year() == month.Year() && record.CreatedAt.Month() == month.Month() {
				buckets[i].Amount += record.Amount
			}
		}
	}
	return buckets
}

type RevenuePoint struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// RevenueSeries returns exact payment events ascending by timestamp, no
// bucketing.
func RevenueSeries(records []domain.EarningsRecord) []RevenuePoint {
	points := make([]RevenuePoint, len(records))
	for i, record := range records {
		points[i] = RevenuePoint{Date: record.CreatedAt, Amount: record.Amount}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// MonthGrowth is the "vs last month" dashboard stat: percentage change of
// this month's count against the previous month's. A jump from zero counts
// as 100% when anything happened this month.
func MonthGrowth(dates []time.Time, now time.Time) float64 {
	thisMonth := 0
	lastMonth := 0
	prev := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())

	for _, d := range dates {
		switch {
		case d.Year() == now.Year() && d.Month() == now.Month():
			thisMonth++
		case d.Year() == prev.Year() && d.Month() == prev.Month():
			lastMonth++
		}
	}

	if lastMonth == 0 {
		if thisMonth > 0 {
			return 100
		}
		return 0
	}
	return float64(thisMonth-lastMonth) / float64(lastMonth) * 100
}
