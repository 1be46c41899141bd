package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/client/services"
)

// Submit prompts for a single monthly report and posts it.
func (a *App) Submit(ctx context.Context) error {
	in, err := a.inputReport()
	if err != nil {
		a.printError(err, services.ReportErrorMessage)
		return err
	}

	res, err := a.reports.Submit(ctx, in)
	if err != nil {
		a.printError(err, services.ReportErrorMessage)
		return err
	}

	verb := "updated"
	if res.Created {
		verb = "created"
	}
	fmt.Fprintf(a.out, "report %s (id %d): %s %s\n", verb, res.Report.ID, res.Report.NGOID, res.Report.Month)
	return nil
}

func (a *App) inputReport() (models.ReportInput, error) {
	var in models.ReportInput
	var err error

	if in.NGOID, err = GetSimpleText(a.reader, "NGO ID", a.out); err != nil {
		return in, err
	}
	if in.Month, err = GetSimpleText(a.reader, "Month (YYYY-MM)", a.out); err != nil {
		return in, err
	}
	if in.PeopleHelped, err = GetInt(a.reader, "People helped", "people_helped", a.out); err != nil {
		return in, err
	}
	if in.EventsConducted, err = GetInt(a.reader, "Events conducted", "events_conducted", a.out); err != nil {
		return in, err
	}
	if in.FundsUtilized, err = GetFloat(a.reader, "Funds utilized", "funds_utilized", a.out); err != nil {
		return in, err
	}
	return in, nil
}
