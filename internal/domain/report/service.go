package report

import "context"

// ReportService assembles daily-hours reports and hands each one to the sink
// the moment it is complete, instead of buffering the whole collection. A
// sink error aborts the stream; reports already emitted are not retracted.
type ReportService interface {
	StreamEmployeeReports(ctx context.Context, req DateRangeRequest, sink func(EmployeeReport) error) error
	StreamProjectReports(ctx context.Context, req DateRangeRequest, sink func(ProjectReport) error) error
}
