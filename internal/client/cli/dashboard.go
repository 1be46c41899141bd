package cli

import (
	"context"

	"github.com/dmitrijs2005/ngoreports/internal/client/services"
)

// Dashboard shows the aggregates of month, prompting when it is empty.
func (a *App) Dashboard(ctx context.Context, month string) error {
	if month == "" {
		var err error
		month, err = GetSimpleText(a.reader, "Month (YYYY-MM)", a.out)
		if err != nil {
			return err
		}
	}

	data, err := a.dashboard.Load(ctx, month)
	if err != nil {
		a.printError(err, services.DashboardErrorMessage)
		return err
	}
	renderDashboard(a.out, data)
	return nil
}

// Current shows the aggregates of the current month.
func (a *App) Current(ctx context.Context) error {
	data, err := a.dashboard.LoadCurrent(ctx)
	if err != nil {
		a.printError(err, services.DashboardErrorMessage)
		return err
	}
	renderDashboard(a.out, data)
	return nil
}
