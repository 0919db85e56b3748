package report

import (
	"context"
	"time"
)

// EmployeeDailyHoursRow is one aggregate row for the employee view: summed
// hours on one (day, project) pair. Totals are unrounded.
type EmployeeDailyHoursRow struct {
	Day         time.Time
	ProjectName string
	TotalHours  *float64
}

// ProjectDailyHoursRow is one aggregate row for the project view.
type ProjectDailyHoursRow struct {
	Day        time.Time
	TotalHours *float64
}

// TimeRecordRepository is the aggregation store the report assembler draws
// from. Implementations must return rows ordered by day ascending, then by
// the secondary key (project name) ascending where one exists. A nil bound
// leaves that side of the range open.
type TimeRecordRepository interface {
	EmployeeDailyHours(ctx context.Context, employeeID int64, from, to *time.Time) ([]EmployeeDailyHoursRow, error)
	ProjectDailyHours(ctx context.Context, projectID int64, employeeID *int64, from, to *time.Time) ([]ProjectDailyHoursRow, error)
}
