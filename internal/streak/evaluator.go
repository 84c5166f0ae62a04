package streak

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/goal"
	"github.com/grouptivate/grouptivate-api/internal/group"
)

// Evaluator closes out an interval for every group on that cadence: groups
// that met all their goals advance their streak, everyone else resets to
// zero, and all progress starts over for the next interval.
type Evaluator struct {
	groupRepo group.GroupRepository
	goalRepo  goal.GoalRepository
}

func NewEvaluator(groupRepo group.GroupRepository, goalRepo goal.GoalRepository) *Evaluator {
	return &Evaluator{groupRepo: groupRepo, goalRepo: goalRepo}
}

// EvaluateInterval runs one evaluation pass. A failing group is logged and
// skipped so its siblings still get evaluated; the next scheduled run
// retries naturally. The caller is trusted to invoke this once per interval
// boundary, since the streak increment is not idempotent.
func (e *Evaluator) EvaluateInterval(ctx context.Context, interval group.Interval) error {
	log := config.WithContext(ctx).WithField("interval", interval)

	groups, err := e.groupRepo.FindByInterval(interval)
	if err != nil {
		log.WithError(err).Error("Failed to load groups for evaluation")
		return err
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(8)

	for i := range groups {
		grp := groups[i]
		eg.Go(func() error {
			if err := e.evaluateGroup(grp); err != nil {
				log.WithError(err).WithField("group_id", grp.ID).
					Warn("Group evaluation failed, skipping")
			}
			return nil
		})
	}
	_ = eg.Wait()

	log.WithField("groups", len(groups)).Info("Interval evaluation finished")
	return nil
}

func (e *Evaluator) evaluateGroup(grp *group.Group) error {
	goals, err := e.goalRepo.FindByIDs(grp.GoalIDs)
	if err != nil {
		return err
	}

	// A group without goals never succeeds: no free streaks.
	succeeded := len(goals) > 0
	for _, g := range goals {
		if g.Progress.Sum() < g.Target {
			succeeded = false
			break
		}
	}

	if succeeded {
		grp.Streak++
	} else {
		grp.Streak = 0
	}
	if err := e.groupRepo.Save(grp); err != nil {
		return err
	}

	// Progress resets every interval whether or not the target was met.
	for _, g := range goals {
		for key := range g.Progress {
			g.Progress[key] = 0
		}
		if err := e.goalRepo.Save(g); err != nil {
			return err
		}
	}
	return nil
}
