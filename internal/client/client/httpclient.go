package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/common"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
	"github.com/dmitrijs2005/ngoreports/internal/netx"
	"github.com/google/uuid"
)

// UploadFieldName is the multipart field the upload endpoint reads.
const UploadFieldName = "file"

// HTTPClient talks to the reporting API over HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates baseURL and returns a client whose requests time
// out after timeout (0 disables the timeout).
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	if _, err := RouteUpload.URL(baseURL); err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// UploadCSV posts the file as a single multipart part. Both 200 (processed
// synchronously) and 202 (accepted) are successes.
func (c *HTTPClient) UploadCSV(ctx context.Context, file models.SelectedFile) (models.UploadResponse, error) {
	u, err := RouteUpload.URL(c.baseURL)
	if err != nil {
		return models.UploadResponse{}, err
	}

	body, contentType, err := netx.NewMultipartFile(UploadFieldName, file.Name, file.Content)
	if err != nil {
		return models.UploadResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("constructing HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	status, respBody, err := c.do(req)
	if err != nil {
		return models.UploadResponse{}, err
	}

	resp, err := models.DecodeUploadResponse(respBody)
	if err != nil {
		return models.UploadResponse{}, &TransportError{StatusCode: status, Err: fmt.Errorf("%w: %w", common.ErrUnexpectedPayload, err)}
	}
	return resp, nil
}

// JobStatus fetches the current snapshot of a job.
func (c *HTTPClient) JobStatus(ctx context.Context, jobID string) (models.UploadJob, error) {
	u, err := RouteJobStatus.URL(c.baseURL, jobID)
	if err != nil {
		return models.UploadJob{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.UploadJob{}, fmt.Errorf("constructing HTTP request: %w", err)
	}

	var job models.UploadJob
	if err := c.doJSON(req, &job); err != nil {
		return models.UploadJob{}, err
	}
	if !job.Status.Valid() {
		return models.UploadJob{}, &TransportError{StatusCode: http.StatusOK,
			Err: fmt.Errorf("%w: job status %q", common.ErrUnexpectedPayload, job.Status)}
	}
	return job, nil
}

// SubmitReport posts a single report. The API upserts by (ngo_id, month);
// the returned flag is true when a new report was created (201).
func (c *HTTPClient) SubmitReport(ctx context.Context, in models.ReportInput) (models.Report, bool, error) {
	u, err := RouteReport.URL(c.baseURL)
	if err != nil {
		return models.Report{}, false, err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return models.Report{}, false, fmt.Errorf("encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return models.Report{}, false, fmt.Errorf("constructing HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	status, body, err := c.do(req)
	if err != nil {
		return models.Report{}, false, err
	}

	var report models.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return models.Report{}, false, &TransportError{StatusCode: status, Err: fmt.Errorf("decode report: %w", err)}
	}
	return report, status == http.StatusCreated, nil
}

// Dashboard fetches the aggregates of one YYYY-MM month.
func (c *HTTPClient) Dashboard(ctx context.Context, month string) (models.DashboardData, error) {
	u, err := RouteDashboard.URL(c.baseURL)
	if err != nil {
		return models.DashboardData{}, err
	}
	q := u.Query()
	q.Set("month", month)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.DashboardData{}, fmt.Errorf("constructing HTTP request: %w", err)
	}

	var data models.DashboardData
	if err := c.doJSON(req, &data); err != nil {
		return models.DashboardData{}, err
	}
	return data, nil
}

func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// do sends req and returns the status code and body of a 2xx answer.
// Anything else is reported as *TransportError.
func (c *HTTPClient) do(req *http.Request) (int, []byte, error) {
	ctx := req.Context()
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.log.With("method", req.Method, "url", req.URL.String(), "request_id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "api request failed", "error", err)
		return 0, nil, &TransportError{Err: err}
	}
	defer netx.CloseResponse(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, newStatusError(resp.StatusCode, body)
	}
	return resp.StatusCode, body, nil
}
