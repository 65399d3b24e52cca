package invoice

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestBuild(t *testing.T) {
	start := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	catalog := []domain.Service{
		{ID: 5, Steps: "Gội đầu", Price: ptr.Ptr(200000.0), DurationMinutes: ptr.Ptr(30)},
		{ID: 6, Steps: "Cắt tóc|Tạo kiểu", Price: ptr.Ptr(150000.0), DurationMinutes: ptr.Ptr(45)},
		{ID: 7, Steps: "Tư vấn"},
	}

	tests := []struct {
		name            string
		ids             []string
		start           *time.Time
		wantPrice       float64
		wantDuration    int
		wantCompletion  *time.Time
		wantMissing     []string
		wantResolvedIDs []int64
	}{
		{
			name:            "single service",
			ids:             []string{"5"},
			start:           &start,
			wantPrice:       200000,
			wantDuration:    30,
			wantCompletion:  ptr.Ptr(start.Add(30 * time.Minute)),
			wantMissing:     []string{},
			wantResolvedIDs: []int64{5},
		},
		{
			name:            "several services in cart order",
			ids:             []string{"6", "5"},
			start:           &start,
			wantPrice:       350000,
			wantDuration:    75,
			wantCompletion:  ptr.Ptr(start.Add(75 * time.Minute)),
			wantMissing:     []string{},
			wantResolvedIDs: []int64{6, 5},
		},
		{
			name:            "missing price and duration count as zero",
			ids:             []string{"7", "5"},
			start:           &start,
			wantPrice:       200000,
			wantDuration:    30,
			wantCompletion:  ptr.Ptr(start.Add(30 * time.Minute)),
			wantMissing:     []string{},
			wantResolvedIDs: []int64{7, 5},
		},
		{
			name:            "unknown ids are excluded",
			ids:             []string{"5", "99"},
			start:           &start,
			wantPrice:       200000,
			wantDuration:    30,
			wantCompletion:  ptr.Ptr(start.Add(30 * time.Minute)),
			wantMissing:     []string{"99"},
			wantResolvedIDs: []int64{5},
		},
		{
			name:            "no start time",
			ids:             []string{"5"},
			start:           nil,
			wantPrice:       200000,
			wantDuration:    30,
			wantMissing:     []string{},
			wantResolvedIDs: []int64{5},
		},
		{
			name:            "empty selection",
			ids:             nil,
			start:           &start,
			wantPrice:       0,
			wantDuration:    0,
			wantMissing:     []string{},
			wantResolvedIDs: []int64{},
		},
		{
			name:            "only unknown ids leave completion unset",
			ids:             []string{"99"},
			start:           &start,
			wantPrice:       0,
			wantDuration:    0,
			wantMissing:     []string{"99"},
			wantResolvedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Build(tt.ids, catalog, tt.start)

			assert.Equal(t, tt.wantPrice, inv.TotalPrice)
			assert.Equal(t, tt.wantDuration, inv.TotalDurationMinutes)
			assert.Equal(t, tt.wantMissing, inv.MissingServiceIDs)
			assert.Equal(t, tt.wantResolvedIDs, inv.ServiceIDs())

			if tt.wantCompletion == nil {
				assert.Nil(t, inv.CompletionTime)
				return
			}
			require.NotNil(t, inv.CompletionTime)
			assert.True(t, tt.wantCompletion.Equal(*inv.CompletionTime))
		})
	}
}

func TestBuild_ExactSums(t *testing.T) {
	catalog := make([]domain.Service, 0, 100)
	ids := make([]string, 0, 100)
	var wantPrice float64
	var wantDuration int

	for i := 1; i <= 100; i++ {
		price := float64(i * 12345)
		duration := i % 90
		catalog = append(catalog, domain.Service{ID: int64(i), Price: ptr.Ptr(price), DurationMinutes: ptr.Ptr(duration)})
		ids = append(ids, strconv.Itoa(i))
		wantPrice += price
		wantDuration += duration
	}

	inv := Build(ids, catalog, nil)
	assert.Equal(t, wantPrice, inv.TotalPrice)
	assert.Equal(t, wantDuration, inv.TotalDurationMinutes)
	assert.Len(t, inv.Services, 100)
	assert.Empty(t, inv.MissingServiceIDs)
}
