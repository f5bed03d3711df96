// Package dispatcher routes typed request messages from UI surfaces to
// the gateway and syncer, wrapping every outcome in a uniform response.
// No failure, panics included, ever crosses the boundary back to a
// caller as anything but {success:false}.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/gateway"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
	"github.com/linkvault/linkvault/internal/syncer"
)

// Recognized actions of the message protocol.
const (
	ActionGetBookmarks         = "getBookmarks"
	ActionSaveBookmark         = "saveBookmark"
	ActionDeleteBookmark       = "deleteBookmark"
	ActionUpdateBookmark       = "updateBookmark"
	ActionGetFolders           = "getFolders"
	ActionSaveFolder           = "saveFolder"
	ActionDeleteFolder         = "deleteFolder"
	ActionGetSettings          = "getSettings"
	ActionSaveSettings         = "saveSettings"
	ActionExportData           = "exportData"
	ActionImportData           = "importData"
	ActionGetStats             = "getStats"
	ActionSyncBrowserBookmarks = "syncBrowserBookmarks"
	ActionDebugPermissions     = "debugPermissions"
)

// Request is one message from a UI surface. Only the fields relevant to
// the action need to be present.
type Request struct {
	Action   string           `json:"action"`
	ID       string           `json:"id,omitempty"`
	Bookmark *domain.Bookmark `json:"bookmark,omitempty"`
	Folder   *domain.Folder   `json:"folder,omitempty"`
	Settings *domain.Settings `json:"settings,omitempty"`
	Query    *gateway.Query   `json:"query,omitempty"`
	Data     json.RawMessage  `json:"data,omitempty"`
}

// Response is the uniform reply shape.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type capabilityReport struct {
	StoreOK        bool   `json:"storeOk"`
	StoreError     string `json:"storeError,omitempty"`
	SyncConfigured bool   `json:"syncConfigured"`
	SyncReadable   bool   `json:"syncReadable"`
	SyncError      string `json:"syncError,omitempty"`
}

// Dispatcher is a stateless routing table from action to one gateway or
// syncer call.
type Dispatcher struct {
	gateway *gateway.Gateway
	syncer  *syncer.Syncer
	store   store.Store
	logger  logger.Logger
}

func New(gw *gateway.Gateway, sy *syncer.Syncer, st store.Store, log logger.Logger) *Dispatcher {
	return &Dispatcher{gateway: gw, syncer: sy, store: st, logger: log}
}

// Dispatch routes one request.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while handling message",
				logger.String("action", req.Action))
			resp = fail(fmt.Errorf("internal error: %v", r))
		}
	}()

	switch req.Action {
	case ActionGetBookmarks:
		var q gateway.Query
		if req.Query != nil {
			q = *req.Query
		}
		bookmarks, err := d.gateway.GetBookmarks(ctx, q)
		return result(bookmarks, err)

	case ActionSaveBookmark:
		if req.Bookmark == nil {
			return fail(fmt.Errorf("%w: missing bookmark", domain.ErrValidation))
		}
		return result(nil, d.gateway.SaveBookmark(ctx, *req.Bookmark))

	case ActionDeleteBookmark:
		return result(nil, d.gateway.DeleteBookmark(ctx, req.ID))

	case ActionUpdateBookmark:
		if req.Bookmark == nil {
			return fail(fmt.Errorf("%w: missing bookmark", domain.ErrValidation))
		}
		return result(nil, d.gateway.UpdateBookmark(ctx, *req.Bookmark))

	case ActionGetFolders:
		folders, err := d.gateway.GetFolders(ctx)
		return result(folders, err)

	case ActionSaveFolder:
		if req.Folder == nil {
			return fail(fmt.Errorf("%w: missing folder", domain.ErrValidation))
		}
		return result(nil, d.gateway.SaveFolder(ctx, *req.Folder))

	case ActionDeleteFolder:
		return result(nil, d.gateway.DeleteFolder(ctx, req.ID))

	case ActionGetSettings:
		settings, err := d.gateway.GetSettings(ctx)
		return result(settings, err)

	case ActionSaveSettings:
		if req.Settings == nil {
			return fail(fmt.Errorf("%w: missing settings", domain.ErrValidation))
		}
		return result(nil, d.gateway.SaveSettings(ctx, *req.Settings))

	case ActionExportData:
		snapshot, err := d.gateway.ExportData(ctx)
		return result(snapshot, err)

	case ActionImportData:
		if len(req.Data) == 0 {
			return fail(fmt.Errorf("%w: missing data", domain.ErrValidation))
		}
		return result(nil, d.gateway.ImportData(ctx, req.Data))

	case ActionGetStats:
		stats, err := d.gateway.GetStats(ctx)
		return result(stats, err)

	case ActionSyncBrowserBookmarks:
		report, err := d.syncer.Sync(ctx)
		return result(report, err)

	case ActionDebugPermissions:
		return result(d.capabilities(ctx), nil)

	default:
		return Response{Success: false, Error: "unknown action"}
	}
}

func (d *Dispatcher) capabilities(ctx context.Context) capabilityReport {
	report := capabilityReport{SyncConfigured: d.syncer.Available()}

	if err := d.store.Ping(ctx); err != nil {
		report.StoreError = err.Error()
	} else {
		report.StoreOK = true
	}

	if report.SyncConfigured {
		if err := d.syncer.Probe(ctx); err != nil {
			report.SyncError = err.Error()
		} else {
			report.SyncReadable = true
		}
	}

	return report
}

func result(data interface{}, err error) Response {
	if err != nil {
		return fail(err)
	}
	return Response{Success: true, Data: data}
}

func fail(err error) Response {
	return Response{Success: false, Error: err.Error()}
}
