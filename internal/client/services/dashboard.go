package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
)

// DashboardClient is the slice of the API the dashboard needs.
type DashboardClient interface {
	Dashboard(ctx context.Context, month string) (models.DashboardData, error)
}

// DashboardService loads monthly aggregates.
//
// Contract:
//   - Load: validate the free-form month text, then issue one query.
//   - LoadCurrent: same for the month of the service clock.
//   - CurrentMonth: the month LoadCurrent would query.
type DashboardService interface {
	Load(ctx context.Context, month string) (models.DashboardData, error)
	LoadCurrent(ctx context.Context) (models.DashboardData, error)
	CurrentMonth() string
}

type dashboardService struct {
	client DashboardClient
	now    func() time.Time
	log    logging.Logger
}

// NewDashboardService constructs a DashboardService. A nil now uses time.Now.
func NewDashboardService(client DashboardClient, now func() time.Time, log logging.Logger) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{client: client, now: now, log: log}
}

func (d *dashboardService) Load(ctx context.Context, month string) (models.DashboardData, error) {
	normalized, err := NormalizeMonth(month)
	if err != nil {
		return models.DashboardData{}, err
	}

	data, err := d.client.Dashboard(ctx, normalized)
	if err != nil {
		d.log.Warn(ctx, "dashboard query failed", "month", normalized, "error", err)
		return models.DashboardData{}, err
	}
	return data, nil
}

func (d *dashboardService) LoadCurrent(ctx context.Context) (models.DashboardData, error) {
	return d.Load(ctx, d.CurrentMonth())
}

func (d *dashboardService) CurrentMonth() string {
	return CurrentMonth(d.now)
}
