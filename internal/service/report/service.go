package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jakubK11/timereport/internal/domain/employee"
	"github.com/jakubK11/timereport/internal/domain/identity"
	"github.com/jakubK11/timereport/internal/domain/project"
	"github.com/jakubK11/timereport/internal/domain/report"
)

type reportServiceImpl struct {
	timeRecordRepo report.TimeRecordRepository
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	scopeResolver  identity.Resolver
}

func NewReportService(
	timeRecordRepo report.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	scopeResolver identity.Resolver,
) report.ReportService {
	return &reportServiceImpl{
		timeRecordRepo: timeRecordRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		scopeResolver:  scopeResolver,
	}
}

// StreamEmployeeReports implements report.ReportService. Subjects are
// processed strictly one at a time so at most one aggregate query is in
// flight and emission order matches storage order. Each report goes to the
// sink as soon as its fold completes; an employee with no matching intervals
// still yields a report with an empty entry list.
func (s *reportServiceImpl) StreamEmployeeReports(ctx context.Context, req report.DateRangeRequest, sink func(report.EmployeeReport) error) error {
	// Range validation happens before scope resolution and before any store
	// call, so invalid input does no partial work.
	if err := req.Validate(); err != nil {
		return err
	}
	from, to := req.Window()

	slog.Info("streaming employee reports", "startDate", req.StartDate, "endDate", req.EndDate)

	subjects, err := s.employeeSubjects(ctx)
	if err != nil {
		return err
	}

	for _, emp := range subjects {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := s.timeRecordRepo.EmployeeDailyHours(ctx, emp.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to aggregate hours for employee %d: %w", emp.ID, err)
		}

		entries := make([]report.DailyHours, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, report.NewDailyHours(row.Day, row.ProjectName, row.TotalHours))
		}

		if err := sink(report.EmployeeReport{Name: emp.Name, HoursSpent: entries}); err != nil {
			return err
		}
		slog.Debug("emitted employee report", "name", emp.Name, "entries", len(entries))
	}

	return nil
}

// StreamProjectReports implements report.ReportService. Admins see every
// project; a regular user sees all projects but with the aggregates filtered
// to their own intervals. Projects whose entry list comes back empty are
// suppressed entirely, unlike employees, which are always reported.
func (s *reportServiceImpl) StreamProjectReports(ctx context.Context, req report.DateRangeRequest, sink func(report.ProjectReport) error) error {
	if err := req.Validate(); err != nil {
		return err
	}
	from, to := req.Window()

	slog.Info("streaming project reports", "startDate", req.StartDate, "endDate", req.EndDate)

	scope, err := s.scopeResolver.Resolve(ctx)
	if err != nil {
		return err
	}

	var employeeFilter *int64
	if !scope.IsAdmin() {
		// The mapping must point at a real employee; a dangling id is a
		// configuration fault surfaced as an internal error.
		emp, err := s.employeeRepo.GetByID(ctx, scope.EmployeeID())
		if err != nil {
			return fmt.Errorf("scoped employee %d: %w", scope.EmployeeID(), err)
		}
		id := emp.ID
		employeeFilter = &id
	}

	projects, err := s.projectRepo.All(ctx)
	if err != nil {
		return err
	}

	for _, proj := range projects {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := s.timeRecordRepo.ProjectDailyHours(ctx, proj.ID, employeeFilter, from, to)
		if err != nil {
			return fmt.Errorf("failed to aggregate hours for project %d: %w", proj.ID, err)
		}
		if len(rows) == 0 {
			continue
		}

		entries := make([]report.ProjectDailyHours, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, report.NewProjectDailyHours(row.Day, row.TotalHours))
		}

		if err := sink(report.ProjectReport{Name: proj.Name, HoursSpent: entries}); err != nil {
			return err
		}
		slog.Debug("emitted project report", "name", proj.Name, "entries", len(entries))
	}

	return nil
}

// employeeSubjects returns the employees the current caller may report on,
// in the order they will be emitted.
func (s *reportServiceImpl) employeeSubjects(ctx context.Context) ([]employee.Employee, error) {
	scope, err := s.scopeResolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if scope.IsAdmin() {
		return s.employeeRepo.All(ctx)
	}

	emp, err := s.employeeRepo.GetByID(ctx, scope.EmployeeID())
	if err != nil {
		return nil, fmt.Errorf("scoped employee %d: %w", scope.EmployeeID(), err)
	}
	return []employee.Employee{emp}, nil
}
