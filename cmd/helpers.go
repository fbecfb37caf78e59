package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/config"
	"github.com/ziadkadry99/learnhub/internal/db"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/logger"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `learnhub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger for the configured mode. --verbose forces
// debug output.
func newLogger(cfg *config.Config) (*logger.Logger, error) {
	mode := string(cfg.Log.Mode)
	if verbose {
		mode = string(config.LogDev)
	}
	return logger.New(mode)
}

// content is the read-only data every surface serves.
type content struct {
	catalog *catalog.Catalog
	lessons *lessons.Store
}

// loadContent reads the catalog and lesson content, falling back to the
// bundled copies when the config names no files.
func loadContent(cfg *config.Config) (*content, error) {
	cat, err := catalog.LoadFile(cfg.Site.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	var store *lessons.Store
	if cfg.Site.ContentDir != "" {
		store, err = lessons.Load(os.DirFS(cfg.Site.ContentDir))
	} else {
		store, err = lessons.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading lessons: %w", err)
	}
	return &content{catalog: cat, lessons: store}, nil
}

// diagnosticsHandle owns the diagnostics database. store is nil when
// diagnostics are disabled.
type diagnosticsHandle struct {
	store    *diagnostics.Store
	recorder diagnostics.Recorder
	db       *db.DB
}

func (h *diagnosticsHandle) Close() error {
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}

// openDiagnostics opens the configured diagnostics store and prunes events
// older than the retention window.
func openDiagnostics(ctx context.Context, cfg *config.Config, log *logger.Logger) (*diagnosticsHandle, error) {
	if !cfg.Diagnostics.Enabled {
		return &diagnosticsHandle{recorder: diagnostics.Nop{}}, nil
	}

	var (
		database *db.DB
		err      error
	)
	if cfg.Diagnostics.DBPath != "" {
		database, err = db.Open(cfg.Diagnostics.DBPath)
	} else {
		database, err = db.OpenMemory()
	}
	if err != nil {
		return nil, fmt.Errorf("opening diagnostics database: %w", err)
	}

	clock := clockwork.NewRealClock()
	store := diagnostics.NewStore(database, clock)

	if retention := cfg.Diagnostics.Retention(); retention > 0 {
		n, err := store.DeleteBefore(ctx, clock.Now().Add(-retention))
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("pruning diagnostics: %w", err)
		}
		if n > 0 {
			log.Info("pruned diagnostic events", "count", n, "retention", retention)
		}
	}

	return &diagnosticsHandle{store: store, recorder: store, db: database}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
