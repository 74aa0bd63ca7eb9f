// Package ingest implements the catalog feed engine: idempotent series
// upserts keyed by external id, nested episode and url reconciliation, and
// derived status rollups.
package ingest

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chenxi-arter/short-drama-api-sub001/config"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/keylock"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
)

const defaultUpdateWindow = 24 * time.Hour

type Ingestor struct {
	storage  storage.Storage
	keys     KeyGenerator
	locks    *keylock.KeyLock
	validate *validator.Validate

	updateWindow time.Duration
	now          func() time.Time
}

func New(store storage.Storage, cfg config.Ingest) *Ingestor {
	window := cfg.UpdateWindow
	if window <= 0 {
		window = defaultUpdateWindow
	}
	return &Ingestor{
		storage:      store,
		keys:         uuidKeys{},
		locks:        keylock.New(),
		validate:     newValidator(),
		updateWindow: window,
		now:          time.Now,
	}
}
