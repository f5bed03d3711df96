package deps

import (
	"time"

	"github.com/linkvault/linkvault/internal/dispatcher"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
)

// Deps is the shared dependency bag handed to every route registrar.
type Deps struct {
	Logger      logger.Logger
	StartTime   time.Time
	Version     string
	Commit      string
	BuildDate   string
	GoVersion   string
	Dispatcher  *dispatcher.Dispatcher
	Store       store.Store
	SyncTrigger chan struct{} // nil when no browser tree source is configured
}
