package report

import (
	"time"

	"github.com/jakubK11/timereport/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRangeRequest carries the optional report bounds, both ISO calendar
// dates. Either side may be empty for an open-ended range.
type DateRangeRequest struct {
	StartDate string
	EndDate   string
}

func (r *DateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	startSet, endSet := !validator.IsEmpty(r.StartDate), !validator.IsEmpty(r.EndDate)

	if startSet {
		var ok bool
		if start, ok = validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if endSet {
		var ok bool
		if end, ok = validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) == 0 && startSet && endSet && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window normalizes the range to timestamps: the start date becomes the start
// of that day and the end date 23:59:59 of that day, so the range is
// inclusive of the whole end day. A nil side means unbounded. Call only after
// Validate.
func (r *DateRangeRequest) Window() (from, to *time.Time) {
	if d, ok := validator.IsValidDate(r.StartDate); ok {
		from = &d
	}
	if d, ok := validator.IsValidDate(r.EndDate); ok {
		eod := d.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &eod
	}
	return from, to
}

// DailyHours is one employee-report entry: hours worked on one project on one
// day.
type DailyHours struct {
	Day         string   `json:"day"`
	ProjectName string   `json:"projectName"`
	TotalHours  *float64 `json:"totalHours"`
}

func NewDailyHours(day time.Time, projectName string, totalHours *float64) DailyHours {
	return DailyHours{
		Day:         day.Format(dateLayout),
		ProjectName: projectName,
		TotalHours:  roundHours(totalHours),
	}
}

// ProjectDailyHours is one project-report entry: hours booked on the project
// on one day, across all contributing employees.
type ProjectDailyHours struct {
	Day        string   `json:"day"`
	TotalHours *float64 `json:"totalHours"`
}

func NewProjectDailyHours(day time.Time, totalHours *float64) ProjectDailyHours {
	return ProjectDailyHours{
		Day:        day.Format(dateLayout),
		TotalHours: roundHours(totalHours),
	}
}

type EmployeeReport struct {
	Name       string       `json:"name"`
	HoursSpent []DailyHours `json:"hoursSpent"`
}

type ProjectReport struct {
	Name       string              `json:"name"`
	HoursSpent []ProjectDailyHours `json:"hoursSpent"`
}

// roundHours rounds to exactly 2 decimal places, half up. Rounding happens
// here, at DTO construction, and nowhere earlier: intermediate sums keep full
// precision. Nil passes through as nil.
func roundHours(h *float64) *float64 {
	if h == nil {
		return nil
	}
	rounded := decimal.NewFromFloat(*h).Round(2).InexactFloat64()
	return &rounded
}
