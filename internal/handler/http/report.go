package http

import (
	"log/slog"
	"net/http"

	"github.com/jakubK11/timereport/internal/domain/report"
	"github.com/jakubK11/timereport/internal/handler/http/response"
	"github.com/jakubK11/timereport/internal/pkg/ndjson"
)

type ReportHandler interface {
	StreamEmployeeReports(w http.ResponseWriter, r *http.Request)
	StreamProjectReports(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// StreamEmployeeReports handles GET /report/employees. Each report is written
// as one NDJSON line and flushed as soon as the service produces it.
func (h *reportHandlerImpl) StreamEmployeeReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DateRangeRequest{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	// Reject bad ranges before committing to the streaming content type.
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", ndjson.ContentType)
	nw := ndjson.NewWriter(w)

	var wrote bool
	err := h.reportService.StreamEmployeeReports(ctx, req, func(rep report.EmployeeReport) error {
		wrote = true
		return nw.Write(rep)
	})
	if err != nil {
		h.streamError(w, r, err, wrote)
	}
}

// StreamProjectReports handles GET /report/projects.
func (h *reportHandlerImpl) StreamProjectReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DateRangeRequest{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", ndjson.ContentType)
	nw := ndjson.NewWriter(w)

	var wrote bool
	err := h.reportService.StreamProjectReports(ctx, req, func(rep report.ProjectReport) error {
		wrote = true
		return nw.Write(rep)
	})
	if err != nil {
		h.streamError(w, r, err, wrote)
	}
}

// streamError reports a stream failure. Before the first write the status
// line is still ours to set; after it, partial output has already reached
// the client and cannot be retracted. Aborting the connection is then the
// only signal left that the result is incomplete: letting the chunked body
// end cleanly would make the truncated stream look like a full response.
func (h *reportHandlerImpl) streamError(w http.ResponseWriter, r *http.Request, err error, wrote bool) {
	if !wrote {
		slog.Error("report stream failed before first record", "path", r.URL.Path, "error", err)
		response.HandleError(w, err)
		return
	}
	slog.Error("report stream aborted mid-response", "path", r.URL.Path, "error", err)
	panic(http.ErrAbortHandler)
}
