// Package scheduler runs periodic WordPress syncs against the configured
// default source.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/database"
	"github.com/openpress/newsroom/internal/importer"
	"github.com/openpress/newsroom/internal/wordpress"
)

// WordPressSyncScheduler manages periodic imports from the configured
// WordPress source.
type WordPressSyncScheduler struct {
	db  *database.Database
	cfg *config.Config
	log zerolog.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSyncing  bool
	cancelFunc context.CancelFunc
}

// NewWordPressSyncScheduler creates a new scheduler instance.
func NewWordPressSyncScheduler(db *database.Database, cfg *config.Config, log zerolog.Logger) *WordPressSyncScheduler {
	return &WordPressSyncScheduler{
		db:   db,
		cfg:  cfg,
		log:  log.With().Str("component", "wordpress_sync").Logger(),
		cron: cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if sync is enabled and a source is configured.
func (s *WordPressSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.WordPressSync.Enabled {
		s.log.Info().Msg("WordPress sync scheduler: disabled")
		return nil
	}

	if s.cfg.WordPress.SourceURL == "" {
		s.log.Info().Msg("WordPress sync scheduler: source URL not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.WordPressSync.Schedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.cfg.WordPressSync.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info().
		Str("schedule", s.cfg.WordPressSync.Schedule).
		Str("source", s.cfg.WordPress.SourceURL).
		Msg("WordPress sync scheduler: started")

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sync. The
// lock is released before the wait so the sync can finish and flip its
// isSyncing flag.
func (s *WordPressSyncScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cancelFunc = nil
	ctx := s.cron.Stop()
	s.mu.Unlock()

	<-ctx.Done()

	s.log.Info().Msg("WordPress sync scheduler: stopped")
}

// RunNow triggers an immediate sync.
func (s *WordPressSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning returns whether the scheduler is active.
func (s *WordPressSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur.
func (s *WordPressSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runSync performs the actual sync. Overlapping runs are skipped rather
// than queued.
func (s *WordPressSyncScheduler) runSync() {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		s.log.Info().Msg("WordPress sync: skipped (already syncing)")
		return
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	client := wordpress.NewClient(wordpress.Config{
		BaseURL:  s.cfg.WordPress.SourceURL,
		Username: s.cfg.WordPress.Username,
		Password: s.cfg.WordPress.Password,
	})
	if s.cfg.Import.PageSize > 0 {
		client.PageSize = s.cfg.Import.PageSize
	}
	if s.cfg.Import.PageDelay > 0 {
		client.PageDelay = s.cfg.Import.PageDelay
	}
	if s.cfg.Import.RequestTimeout > 0 {
		client.SetTimeout(s.cfg.Import.RequestTimeout)
	}
	client.MaxPages = s.cfg.Import.MaxPages

	imp := importer.NewImporter(client, s.db.DB, s.log)
	report, err := imp.Run(context.Background(), importer.Options{
		Statuses:     s.cfg.WordPress.Statuses,
		SkipExisting: s.cfg.WordPressSync.SkipExisting,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("WordPress sync failed")
		return
	}

	summary := report.Summary()
	s.log.Info().
		Int("articles_created", summary.Articles.Created).
		Int("articles_updated", summary.Articles.Updated).
		Int("articles_failed", summary.Articles.Failed).
		Msg("WordPress sync finished")
}
