package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/common"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
)

// ReportClient is the slice of the API report submission needs.
type ReportClient interface {
	SubmitReport(ctx context.Context, in models.ReportInput) (models.Report, bool, error)
}

// SubmitResult is the stored report and whether it was newly created
// (as opposed to an update of the same NGO and month).
type SubmitResult struct {
	Report  models.Report
	Created bool
}

// ReportService submits single monthly reports.
type ReportService interface {
	Submit(ctx context.Context, in models.ReportInput) (SubmitResult, error)
}

type reportService struct {
	client ReportClient
	log    logging.Logger
}

// NewReportService constructs a ReportService bound to the given API client.
func NewReportService(client ReportClient, log logging.Logger) ReportService {
	return &reportService{client: client, log: log}
}

// Submit validates in locally and posts it. Validation failures are
// *common.ValidationError and make no network call.
func (r *reportService) Submit(ctx context.Context, in models.ReportInput) (SubmitResult, error) {
	in, err := ValidateReport(in)
	if err != nil {
		return SubmitResult{}, err
	}

	report, created, err := r.client.SubmitReport(ctx, in)
	if err != nil {
		r.log.Warn(ctx, "report submission failed", "ngo_id", in.NGOID, "month", in.Month, "error", err)
		return SubmitResult{}, err
	}

	r.log.Info(ctx, "report submitted", "ngo_id", report.NGOID, "month", report.Month, "created", created)
	return SubmitResult{Report: report, Created: created}, nil
}

// ValidateReport returns in with NGOID trimmed and Month normalized.
func ValidateReport(in models.ReportInput) (models.ReportInput, error) {
	in.NGOID = strings.TrimSpace(in.NGOID)
	if in.NGOID == "" {
		return in, common.NewValidationError(common.ErrMissingField, "ngo_id is required")
	}

	month, err := NormalizeMonth(in.Month)
	if err != nil {
		return in, err
	}
	in.Month = month

	switch {
	case in.PeopleHelped < 0:
		return in, negative("people_helped")
	case in.EventsConducted < 0:
		return in, negative("events_conducted")
	case in.FundsUtilized < 0:
		return in, negative("funds_utilized")
	}
	return in, nil
}

func negative(field string) error {
	return common.NewValidationError(common.ErrNegativeValue, "%s must not be negative", field)
}
