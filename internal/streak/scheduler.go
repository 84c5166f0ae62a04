package streak

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/group"
)

// Scheduler fires one evaluation per interval class at its boundary:
// daily at midnight, weekly on Monday, monthly on the 1st.
type Scheduler struct {
	cron      *cron.Cron
	evaluator *Evaluator
}

func NewScheduler(evaluator *Evaluator) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		evaluator: evaluator,
	}
}

func (s *Scheduler) Start() error {
	schedules := map[group.Interval]string{
		group.IntervalDaily:   "0 0 * * *",
		group.IntervalWeekly:  "0 0 * * 1",
		group.IntervalMonthly: "0 0 1 * *",
	}

	for interval, spec := range schedules {
		interval := interval
		if _, err := s.cron.AddFunc(spec, func() {
			if err := s.evaluator.EvaluateInterval(context.Background(), interval); err != nil {
				config.Logger().WithError(err).WithField("interval", interval).
					Error("Streak evaluation run failed")
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	config.Logger().Info("Streak scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	config.Logger().Info("Streak scheduler stopped")
}
