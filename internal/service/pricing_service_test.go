package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/entities"
)

var standardTiers = []entities.DiscountTier{
	{MinDays: 3, Percentage: 10},
	{MinDays: 7, Percentage: 20},
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 10, 0, 0, 0, time.UTC)
}

func TestComputeQuoteDiscountTiers(t *testing.T) {
	cases := []struct {
		days    int
		total   float64
		savings float64
		pct     float64
	}{
		{2, 2000, 0, 0},
		{5, 4500, 500, 10},
		{10, 8000, 2000, 20},
	}
	for _, tc := range cases {
		q, err := ComputeQuote(1000, standardTiers, day(1), day(1+tc.days))
		require.NoError(t, err)
		assert.Equal(t, tc.days, q.Days)
		assert.InDelta(t, tc.total, q.Total, 1e-9)
		assert.InDelta(t, tc.savings, q.Savings, 1e-9)
		assert.Equal(t, tc.pct, q.DiscountPct)
		assert.InDelta(t, q.Subtotal, q.Total+q.Savings, 1e-9)
	}
}

func TestComputeQuoteRejectsBadDateRange(t *testing.T) {
	_, err := ComputeQuote(1000, nil, day(10), day(10))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ComputeQuote(1000, nil, day(10), day(9))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestRentalDaysCeiling(t *testing.T) {
	pickup := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	// 23 hours still charges one day
	days, err := RentalDays(pickup, time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	// exactly 24 hours is one day
	days, err = RentalDays(pickup, pickup.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	// one minute over rounds up
	days, err = RentalDays(pickup, pickup.Add(24*time.Hour+time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, days)
}

func TestBestDiscountPicksHighestPercentage(t *testing.T) {
	tier, ok := BestDiscount(standardTiers, 8)
	require.True(t, ok)
	assert.Equal(t, 20.0, tier.Percentage)

	tier, ok = BestDiscount(standardTiers, 3)
	require.True(t, ok)
	assert.Equal(t, 10.0, tier.Percentage)

	_, ok = BestDiscount(standardTiers, 2)
	assert.False(t, ok)

	_, ok = BestDiscount(nil, 30)
	assert.False(t, ok)
}

func TestBestDiscountTieBreaksOnSmallerThreshold(t *testing.T) {
	tiers := []entities.DiscountTier{
		{MinDays: 7, Percentage: 15},
		{MinDays: 3, Percentage: 15},
	}
	tier, ok := BestDiscount(tiers, 10)
	require.True(t, ok)
	assert.Equal(t, 3, tier.MinDays)

	// order independent
	tier, ok = BestDiscount([]entities.DiscountTier{tiers[1], tiers[0]}, 10)
	require.True(t, ok)
	assert.Equal(t, 3, tier.MinDays)
}

func TestComputeQuoteKeepsFullPrecision(t *testing.T) {
	q, err := ComputeQuote(999.99, []entities.DiscountTier{{MinDays: 1, Percentage: 33}}, day(1), day(2))
	require.NoError(t, err)
	assert.InDelta(t, 999.99*0.67, q.Total, 1e-9)
	assert.InDelta(t, 999.99*0.33, q.Savings, 1e-9)
}
