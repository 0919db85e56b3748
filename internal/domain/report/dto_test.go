package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hoursPtr(v float64) *float64 { return &v }

func TestNewDailyHours_RoundsHalfUp(t *testing.T) {
	day := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	// 8h55m = 8.91666... hours
	entry := NewDailyHours(day, "Sample Project A", hoursPtr(8.0+55.0/60.0))

	require.NotNil(t, entry.TotalHours)
	assert.Equal(t, 8.92, *entry.TotalHours)
	assert.Equal(t, "2024-02-02", entry.Day)
	assert.Equal(t, "Sample Project A", entry.ProjectName)
}

func TestNewDailyHours_RoundingIsIdempotent(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	once := NewDailyHours(day, "Sample Project A", hoursPtr(9.5))
	twice := NewDailyHours(day, "Sample Project A", once.TotalHours)

	require.NotNil(t, twice.TotalHours)
	assert.Equal(t, *once.TotalHours, *twice.TotalHours)
	assert.Equal(t, 9.5, *twice.TotalHours)
}

func TestNewDailyHours_NilTotalPassesThrough(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	entry := NewDailyHours(day, "Sample Project A", nil)

	assert.Nil(t, entry.TotalHours)
}

func TestNewProjectDailyHours_Rounds(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	entry := NewProjectDailyHours(day, hoursPtr(9.005))

	require.NotNil(t, entry.TotalHours)
	assert.Equal(t, 9.01, *entry.TotalHours)
}

func TestDateRangeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     DateRangeRequest
		wantErr bool
	}{
		{name: "both empty", req: DateRangeRequest{}, wantErr: false},
		{name: "only start", req: DateRangeRequest{StartDate: "2024-02-01"}, wantErr: false},
		{name: "only end", req: DateRangeRequest{EndDate: "2024-02-01"}, wantErr: false},
		{name: "ordered range", req: DateRangeRequest{StartDate: "2024-02-01", EndDate: "2024-02-02"}, wantErr: false},
		{name: "same day", req: DateRangeRequest{StartDate: "2024-02-01", EndDate: "2024-02-01"}, wantErr: false},
		{name: "end before start", req: DateRangeRequest{StartDate: "2024-02-02", EndDate: "2024-02-01"}, wantErr: true},
		{name: "bad start format", req: DateRangeRequest{StartDate: "02/01/2024"}, wantErr: true},
		{name: "bad end format", req: DateRangeRequest{EndDate: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateRangeRequest_Window(t *testing.T) {
	req := DateRangeRequest{StartDate: "2024-02-01", EndDate: "2024-02-02"}

	from, to := req.Window()

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2024, 2, 2, 23, 59, 59, 0, time.UTC), *to)
}

func TestDateRangeRequest_Window_OpenSides(t *testing.T) {
	from, to := (&DateRangeRequest{}).Window()
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, to = (&DateRangeRequest{StartDate: "2024-02-01"}).Window()
	assert.NotNil(t, from)
	assert.Nil(t, to)

	from, to = (&DateRangeRequest{EndDate: "2024-02-01"}).Window()
	assert.Nil(t, from)
	assert.NotNil(t, to)
}
