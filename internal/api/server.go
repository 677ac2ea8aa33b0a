package api

import (
	"context"

	"github.com/vytor/lotto/internal/charts"
	"github.com/vytor/lotto/internal/services"
)

// Pinger reports database reachability for the readiness probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	DB              Pinger
	DrawService     services.DrawService
	RowService      services.RowService
	WinnerService   services.WinnerService
	StatsService    services.StatsService
	SettingsService services.SettingsService
	ImportService   services.ImportService
	ChartConfig     charts.ChartConfig
}
