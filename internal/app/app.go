// Package app wires the monitor process together: feed, ledger, notifier,
// monitor loop and HTTP surface.
package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/polymix/polymix/internal/ledger"
	"github.com/polymix/polymix/internal/monitor"
	"github.com/polymix/polymix/internal/notify"
	"github.com/polymix/polymix/pkg/cache"
	"github.com/polymix/polymix/pkg/config"
	"github.com/polymix/polymix/pkg/healthprobe"
	"github.com/polymix/polymix/pkg/httpserver"
)

// App is the main application orchestrator.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	probe      *healthprobe.Probe
	httpServer *httpserver.Server
	feedCache  cache.Cache
	store      ledger.Store
	ledger     *ledger.Ledger
	notifier   notify.Notifier
	monitor    *monitor.Monitor
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}
