package streak_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grouptivate/grouptivate-api/internal/streak"
)

func TestSchedulerStartStop(t *testing.T) {
	f := setup(t)

	s := streak.NewScheduler(f.evaluator)
	require.NoError(t, s.Start())
	s.Stop()
}
