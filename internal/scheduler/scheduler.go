// Package scheduler drives the daily dispatch. Each workspace gets one
// cron entry in its own timezone, weekdays only; changing a workspace's
// dispatch time or timezone takes effect through Reload.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	standupService "github.com/antonk9218/standup-bot/internal/standup/service"
	workspaceModel "github.com/antonk9218/standup-bot/internal/workspace/model"
	workspaceService "github.com/antonk9218/standup-bot/internal/workspace/service"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// Scheduler owns the cron runner and rebuilds it from workspace settings.
type Scheduler struct {
	standups   standupService.Service
	workspaces workspaceService.Service
	logger     *zap.SugaredLogger

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a scheduler. Call Start to load entries and begin ticking.
func New(standups standupService.Service, workspaces workspaceService.Service, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		standups:   standups,
		workspaces: workspaces,
		logger:     logger,
	}
}

// Start loads one entry per workspace and starts the cron runner.
func (s *Scheduler) Start(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload rebuilds the schedule from current workspace settings. The old
// runner keeps ticking until the replacement is ready, so a failed reload
// leaves the previous schedule in place.
func (s *Scheduler) Reload(ctx context.Context) error {
	workspaces, err := s.workspaces.List(ctx)
	if err != nil {
		return fmt.Errorf("load workspaces: %w", err)
	}

	next := cron.New()
	for _, ws := range workspaces {
		if err := s.addEntry(next, ws); err != nil {
			s.logger.Errorw("schedule entry rejected",
				"workspace_id", ws.ID,
				"default_time", ws.DefaultTime,
				"timezone", ws.Timezone,
				"error", err,
			)
			continue
		}
	}

	s.mu.Lock()
	old := s.cron
	s.cron = next
	s.mu.Unlock()

	next.Start()
	if old != nil {
		old.Stop()
	}

	s.logger.Infow("schedule loaded", "workspaces", len(workspaces), "entries", len(next.Entries()))
	return nil
}

// Stop halts the cron runner and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

func (s *Scheduler) addEntry(c *cron.Cron, ws workspaceModel.Workspace) error {
	spec, err := cronSpec(ws.DefaultTime, ws.Timezone)
	if err != nil {
		return err
	}

	workspaceID := ws.ID
	_, err = c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.standups.RunWorkspace(ctx, workspaceID, time.Now()); err != nil {
			s.logger.Errorw("scheduled dispatch failed", "workspace_id", workspaceID, "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.logger.Infow("dispatch scheduled", "workspace_id", workspaceID, "spec", spec)
	return nil
}

// cronSpec renders a weekday entry like
// "CRON_TZ=Europe/Berlin 30 9 * * MON-FRI" from a workspace's settings.
func cronSpec(dispatchTime, timezone string) (string, error) {
	hour, minute, err := timeutil.ParseClock(dispatchTime)
	if err != nil {
		return "", err
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	return fmt.Sprintf("CRON_TZ=%s %d %d * * MON-FRI", timezone, minute, hour), nil
}
