package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/client/services"
	"github.com/dmitrijs2005/ngoreports/internal/common"
	"github.com/dmitrijs2005/ngoreports/internal/filex"
)

// Select picks the CSV file to upload. Without a path argument the user is
// prompted for one. Files without the .csv suffix are rejected before they
// are read.
func (a *App) Select(ctx context.Context, path string) error {
	if path == "" {
		var err error
		path, err = GetSimpleText(a.reader, "Enter path to CSV file", a.out)
		if err != nil {
			return err
		}
	}

	candidate := models.SelectedFile{Name: filepath.Base(path)}
	if !candidate.IsCSV() {
		err := a.uploads.Select(candidate)
		a.printError(err, services.UploadErrorMessage)
		return err
	}

	name, content, err := filex.ReadNamed(path)
	if err != nil {
		a.log.Warn(ctx, "cannot read file", "path", path, "error", err)
		fmt.Fprintf(a.out, "error: cannot read %s\n", path)
		return err
	}

	if err := a.uploads.Select(models.SelectedFile{Name: name, Content: content}); err != nil {
		a.printError(err, services.UploadErrorMessage)
		return err
	}
	fmt.Fprintf(a.out, "selected: %s (%d bytes)\n", name, len(content))
	return nil
}

// Upload sends the selected file. Progress is reported by the job observer
// and by the status command.
func (a *App) Upload(ctx context.Context) error {
	job, err := a.uploads.Upload(ctx)
	if errors.Is(err, common.ErrUploadSuperseded) {
		fmt.Fprintln(a.out, "upload result discarded, a newer file was selected")
		return err
	}
	if err != nil {
		a.printError(err, services.UploadErrorMessage)
		return err
	}
	fmt.Fprintf(a.out, "uploaded, job %s\n", job.JobID)
	fmt.Fprintln(a.out, FormatJob(job))
	return nil
}

// Status prints the current job. With wait it blocks until polling has ended.
func (a *App) Status(ctx context.Context, wait bool) error {
	st := a.uploads.State()
	if wait {
		var err error
		st, err = a.uploads.Wait(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	if st.HasFile {
		fmt.Fprintf(a.out, "file: %s\n", st.FileName)
	}
	if st.Error != "" {
		fmt.Fprintf(a.out, "error: %s\n", st.Error)
	}
	if st.Job == nil {
		fmt.Fprintln(a.out, "no upload job")
		return nil
	}
	fmt.Fprintf(a.out, "job: %s\n", st.Job.JobID)
	fmt.Fprintln(a.out, FormatJob(*st.Job))
	return nil
}
