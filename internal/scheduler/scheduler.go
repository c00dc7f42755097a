package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"skycast/internal/dashboard"
)

// Scheduler periodically re-fetches weather for the dashboard's active
// location so a long-lived session does not go stale.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	controller *dashboard.Controller
	interval   time.Duration
}

func New(controller *dashboard.Controller, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.UTC),
		controller: controller,
		interval:   interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. A non-positive interval disables refreshing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.controller.Refresh(ctx); err != nil {
			log.Printf("scheduler: refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
