package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jakubK11/timereport/internal/domain/report"
	"github.com/jakubK11/timereport/internal/pkg/database"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) report.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

// EmployeeDailyHours implements report.TimeRecordRepository. Hours are summed
// per (day, project) from the raw intervals; the ORDER BY carries the
// ordering contract the assembler depends on.
func (t *timeRecordRepositoryImpl) EmployeeDailyHours(ctx context.Context, employeeID int64, from, to *time.Time) ([]report.EmployeeDailyHoursRow, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT DATE(tr.time_from) AS day, p.name AS project_name,
		       SUM(EXTRACT(EPOCH FROM (tr.time_to - tr.time_from)) / 3600) AS total_hours
		FROM time_record tr
		JOIN project p ON tr.project_id = p.id
		WHERE tr.employee_id = $1
		  AND ($2::timestamp IS NULL OR tr.time_from >= $2)
		  AND ($3::timestamp IS NULL OR tr.time_to <= $3)
		GROUP BY DATE(tr.time_from), p.name
		ORDER BY DATE(tr.time_from), p.name
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee daily hours: %w", err)
	}
	defer rows.Close()

	var result []report.EmployeeDailyHoursRow
	for rows.Next() {
		var row report.EmployeeDailyHoursRow
		if err := rows.Scan(&row.Day, &row.ProjectName, &row.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan employee daily hours: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// ProjectDailyHours implements report.TimeRecordRepository. A non-nil
// employeeID narrows the aggregate to that employee's intervals.
func (t *timeRecordRepositoryImpl) ProjectDailyHours(ctx context.Context, projectID int64, employeeID *int64, from, to *time.Time) ([]report.ProjectDailyHoursRow, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT DATE(tr.time_from) AS day,
		       SUM(EXTRACT(EPOCH FROM (tr.time_to - tr.time_from)) / 3600) AS total_hours
		FROM time_record tr
		WHERE tr.project_id = $1
		  AND ($2::bigint IS NULL OR tr.employee_id = $2)
		  AND ($3::timestamp IS NULL OR tr.time_from >= $3)
		  AND ($4::timestamp IS NULL OR tr.time_to <= $4)
		GROUP BY DATE(tr.time_from)
		ORDER BY DATE(tr.time_from)
	`

	rows, err := q.Query(ctx, query, projectID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query project daily hours: %w", err)
	}
	defer rows.Close()

	var result []report.ProjectDailyHoursRow
	for rows.Next() {
		var row report.ProjectDailyHoursRow
		if err := rows.Scan(&row.Day, &row.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan project daily hours: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
