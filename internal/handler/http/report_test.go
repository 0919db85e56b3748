package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jakubK11/timereport/internal/domain/report"
	"github.com/jakubK11/timereport/internal/pkg/ndjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	employeeReports []report.EmployeeReport
	projectReports  []report.ProjectReport
	failAfter       int // emit this many reports, then fail; -1 disables
	calls           int
}

func (f *fakeReportService) StreamEmployeeReports(ctx context.Context, req report.DateRangeRequest, sink func(report.EmployeeReport) error) error {
	f.calls++
	if err := req.Validate(); err != nil {
		return err
	}
	for i, rep := range f.employeeReports {
		if f.failAfter >= 0 && i == f.failAfter {
			return errors.New("store failure")
		}
		if err := sink(rep); err != nil {
			return err
		}
	}
	if f.failAfter >= 0 && f.failAfter >= len(f.employeeReports) {
		return errors.New("store failure")
	}
	return nil
}

func (f *fakeReportService) StreamProjectReports(ctx context.Context, req report.DateRangeRequest, sink func(report.ProjectReport) error) error {
	f.calls++
	if err := req.Validate(); err != nil {
		return err
	}
	for _, rep := range f.projectReports {
		if err := sink(rep); err != nil {
			return err
		}
	}
	return nil
}

func hoursPtr(v float64) *float64 { return &v }

func fixtureEmployeeReports() []report.EmployeeReport {
	return []report.EmployeeReport{
		{Name: "Tom", HoursSpent: []report.DailyHours{
			{Day: "2024-02-01", ProjectName: "Sample Project A", TotalHours: hoursPtr(9)},
		}},
		{Name: "Jerry", HoursSpent: []report.DailyHours{}},
	}
}

func TestStreamEmployeeReports_NDJSON(t *testing.T) {
	svc := &fakeReportService{employeeReports: fixtureEmployeeReports(), failAfter: -1}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/employees", nil)
	rec := httptest.NewRecorder()
	handler.StreamEmployeeReports(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ndjson.ContentType, rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first report.EmployeeReport
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Tom", first.Name)
	require.Len(t, first.HoursSpent, 1)
	assert.Equal(t, 9.0, *first.HoursSpent[0].TotalHours)

	// An employee without hours is still a line, with an empty list.
	assert.JSONEq(t, `{"name":"Jerry","hoursSpent":[]}`, lines[1])
}

func TestStreamEmployeeReports_InvalidRangeIs400(t *testing.T) {
	svc := &fakeReportService{failAfter: -1}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/employees?startDate=2024-02-02&endDate=2024-02-01", nil)
	rec := httptest.NewRecorder()
	handler.StreamEmployeeReports(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end date cannot be before start date")
	// Rejected before the service ran.
	assert.Zero(t, svc.calls)
}

func TestStreamEmployeeReports_FailureBeforeFirstRecordIs500(t *testing.T) {
	svc := &fakeReportService{employeeReports: fixtureEmployeeReports(), failAfter: 0}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/employees", nil)
	rec := httptest.NewRecorder()
	handler.StreamEmployeeReports(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestStreamEmployeeReports_MidStreamFailureAbortsConnection(t *testing.T) {
	svc := &fakeReportService{employeeReports: fixtureEmployeeReports(), failAfter: 1}
	handler := NewReportHandler(svc)

	srv := httptest.NewServer(http.HandlerFunc(handler.StreamEmployeeReports))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	// The status line already went out with the first record.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The connection is aborted instead of ending the chunked body cleanly,
	// so reading past the partial output fails and the client can tell the
	// result is incomplete.
	body, readErr := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Tom")
	assert.NotContains(t, string(body), "Jerry")
	assert.Error(t, readErr)
}

func TestStreamProjectReports_NDJSON(t *testing.T) {
	svc := &fakeReportService{
		projectReports: []report.ProjectReport{
			{Name: "Sample Project A", HoursSpent: []report.ProjectDailyHours{
				{Day: "2024-02-02", TotalHours: hoursPtr(8.92)},
			}},
		},
		failAfter: -1,
	}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/projects?startDate=2024-02-02&endDate=2024-02-02", nil)
	rec := httptest.NewRecorder()
	handler.StreamProjectReports(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ndjson.ContentType, rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.JSONEq(t, `{"name":"Sample Project A","hoursSpent":[{"day":"2024-02-02","totalHours":8.92}]}`, lines[0])
}

func TestStreamProjectReports_InvalidRangeIs400(t *testing.T) {
	svc := &fakeReportService{failAfter: -1}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/projects?startDate=2024-03-01&endDate=2024-02-01", nil)
	rec := httptest.NewRecorder()
	handler.StreamProjectReports(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}
