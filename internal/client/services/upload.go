package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/client/poller"
	"github.com/dmitrijs2005/ngoreports/internal/common"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
)

// UploadClient is the slice of the API the bulk upload flow needs.
type UploadClient interface {
	UploadCSV(ctx context.Context, file models.SelectedFile) (models.UploadResponse, error)
	JobStatus(ctx context.Context, jobID string) (models.UploadJob, error)
}

// UploadState is the observable state of the upload flow.
type UploadState struct {
	FileName  string
	HasFile   bool
	Uploading bool
	Polling   bool
	Job       *models.UploadJob
	Error     string
}

// UploadService owns the selected file, the current job snapshot, and the
// single polling session of the bulk upload flow.
//
// Contract:
//   - Select: accept a .csv file, dropping any previous job and session.
//   - Upload: send the selected file and start polling unless the job is
//     already terminal.
//   - State: snapshot of the observable state.
//   - Wait: block until the active session ends or ctx is done.
//   - Close: stop the active session; no update is delivered afterwards.
type UploadService interface {
	Select(file models.SelectedFile) error
	Upload(ctx context.Context) (models.UploadJob, error)
	State() UploadState
	Wait(ctx context.Context) (UploadState, error)
	Close()
}

// UploadOption customizes an UploadService.
type UploadOption func(*uploadService)

// WithPollInterval overrides poller.DefaultInterval.
func WithPollInterval(d time.Duration) UploadOption {
	return func(u *uploadService) { u.interval = d }
}

// WithJobObserver registers fn to receive every snapshot applied by polling.
// fn runs on the polling goroutine.
func WithJobObserver(fn func(models.UploadJob)) UploadOption {
	return func(u *uploadService) { u.observer = fn }
}

type uploadService struct {
	client   UploadClient
	log      logging.Logger
	interval time.Duration
	observer func(models.UploadJob)

	mu        sync.Mutex
	file      *models.SelectedFile
	job       *models.UploadJob
	errMsg    string
	uploading bool
	session   *poller.Session
	// generation changes on every Select and Upload so a response that
	// belongs to a superseded attempt is ignored.
	generation uint64
}

// NewUploadService constructs an UploadService bound to the given API client.
func NewUploadService(client UploadClient, log logging.Logger, opts ...UploadOption) UploadService {
	u := &uploadService{client: client, log: log, interval: poller.DefaultInterval}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *uploadService) Select(file models.SelectedFile) error {
	if !file.IsCSV() {
		err := common.NewValidationError(common.ErrNotCSV, "please select a CSV file")
		u.mu.Lock()
		u.errMsg = err.Message
		u.mu.Unlock()
		return err
	}

	u.mu.Lock()
	u.file = &file
	u.job = nil
	u.errMsg = ""
	u.generation++
	prev := u.session
	u.session = nil
	u.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	return nil
}

func (u *uploadService) Upload(ctx context.Context) (models.UploadJob, error) {
	u.mu.Lock()
	if u.file == nil {
		err := common.NewValidationError(common.ErrNoFileSelected, "no file selected")
		u.errMsg = err.Message
		u.mu.Unlock()
		return models.UploadJob{}, err
	}
	if u.uploading {
		u.mu.Unlock()
		return models.UploadJob{}, common.NewValidationError(common.ErrUploadInProgress, "an upload is already in progress")
	}
	file := *u.file
	u.uploading = true
	u.errMsg = ""
	u.job = nil
	u.generation++
	gen := u.generation
	prev := u.session
	u.session = nil
	u.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}

	resp, err := u.client.UploadCSV(ctx, file)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		// Superseded by a newer selection while the request was in flight.
		u.uploading = false
		if err != nil {
			return models.UploadJob{}, err
		}
		return models.UploadJob{}, common.ErrUploadSuperseded
	}
	u.uploading = false

	if err != nil {
		u.errMsg = UploadErrorMessage(err)
		u.log.Warn(ctx, "upload failed", "file", file.Name, "error", err)
		return models.UploadJob{}, err
	}

	job := resp.Job()
	u.job = &job
	u.log.Info(ctx, "upload accepted", "file", file.Name, "job_id", job.JobID,
		"kind", resp.Kind.String(), "status", job.Status)

	if job.Status.IsTerminal() {
		return job, nil
	}

	// The session lives as long as ctx; pass a long-lived context.
	sess := poller.NewSession(job.JobID, u.interval, u.client.JobStatus, u.applyFor(gen), u.log)
	if err := sess.Start(ctx); err != nil {
		u.log.Error(ctx, "cannot start polling", "job_id", job.JobID, "error", err)
		return job, nil
	}
	u.session = sess
	return job, nil
}

// applyFor returns the update callback of the session started by upload
// attempt gen. Snapshots of a superseded session are dropped.
func (u *uploadService) applyFor(gen uint64) poller.UpdateFunc {
	return func(job models.UploadJob) {
		u.mu.Lock()
		if gen != u.generation {
			u.mu.Unlock()
			return
		}
		u.job = &job
		observer := u.observer
		u.mu.Unlock()

		if observer != nil {
			observer(job)
		}
	}
}

func (u *uploadService) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stateLocked()
}

func (u *uploadService) stateLocked() UploadState {
	st := UploadState{
		Uploading: u.uploading,
		Polling:   u.session != nil && u.session.State() == poller.StatePolling,
		Error:     u.errMsg,
	}
	if u.file != nil {
		st.HasFile = true
		st.FileName = u.file.Name
	}
	if u.job != nil {
		job := *u.job
		st.Job = &job
	}
	return st
}

func (u *uploadService) Wait(ctx context.Context) (UploadState, error) {
	u.mu.Lock()
	sess := u.session
	u.mu.Unlock()

	if sess != nil {
		select {
		case <-sess.Done():
		case <-ctx.Done():
			return u.State(), ctx.Err()
		}
	}
	return u.State(), nil
}

func (u *uploadService) Close() {
	u.mu.Lock()
	sess := u.session
	u.session = nil
	u.generation++
	u.mu.Unlock()

	if sess != nil {
		sess.Stop()
	}
}
