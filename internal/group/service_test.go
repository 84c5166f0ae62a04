package group_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/goal"
	"github.com/grouptivate/grouptivate-api/internal/group"
	"github.com/grouptivate/grouptivate-api/internal/testutil"
	"github.com/grouptivate/grouptivate-api/internal/user"
)

type fixture struct {
	db        *gorm.DB
	userRepo  user.UserRepository
	goalRepo  goal.GoalRepository
	groupRepo group.GroupRepository
	groups    group.Service
	goals     goal.GoalService
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.OpenDB(t, &user.User{}, &group.Group{}, &goal.Goal{})
	userRepo := user.NewRepository(db)
	goalRepo := goal.NewRepository(db)
	groupRepo := group.NewRepository(db)

	return &fixture{
		db:        db,
		userRepo:  userRepo,
		goalRepo:  goalRepo,
		groupRepo: groupRepo,
		groups:    group.NewService(db, groupRepo, userRepo, goalRepo),
		goals:     goal.NewService(db, goalRepo, groupRepo),
	}
}

func (f *fixture) seedUser(t *testing.T, name string) *user.User {
	t.Helper()

	u := &user.User{
		ID:       uuid.New(),
		Name:     name,
		Password: "hashed",
		GroupIDs: datatypes.JSONSlice[string]{},
		LastSync: time.Unix(0, 0).UTC(),
	}
	require.NoError(t, f.userRepo.Create(u))
	return u
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatorBecomesMember", func(t *testing.T) {
		f := setup(t)
		u := f.seedUser(t, "alice")

		resp, err := f.groups.Create(ctx, u.ID.String(), group.CreateGroupDTO{
			GroupName: "Morning runs",
			Interval:  group.IntervalDaily,
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.GroupID)

		g, err := f.groupRepo.FindByID(resp.GroupID)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.True(t, g.HasMember(u.ID.String()))
		assert.Equal(t, 0, g.Streak)

		stored, err := f.userRepo.FindByID(u.ID)
		require.NoError(t, err)
		assert.Contains(t, []string(stored.GroupIDs), resp.GroupID)
	})

	t.Run("InvalidInterval", func(t *testing.T) {
		f := setup(t)
		u := f.seedUser(t, "alice")

		_, err := f.groups.Create(ctx, u.ID.String(), group.CreateGroupDTO{
			GroupName: "Bad cadence",
			Interval:  group.Interval("hourly"),
		})
		assert.ErrorIs(t, err, group.ErrInvalidInterval)
	})
}

func TestGetGroup(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	member := f.seedUser(t, "alice")
	outsider := f.seedUser(t, "bob")

	created, err := f.groups.Create(ctx, member.ID.String(), group.CreateGroupDTO{
		GroupName: "Book club",
		Interval:  group.IntervalWeekly,
	})
	require.NoError(t, err)

	t.Run("MemberSeesGroup", func(t *testing.T) {
		resp, err := f.groups.Get(ctx, created.GroupID, member.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Book club", resp.GroupName)
		assert.Equal(t, group.IntervalWeekly, resp.Interval)
		assert.Equal(t, map[string]string{member.ID.String(): "alice"}, resp.Users)
		assert.Empty(t, resp.Goals)
	})

	t.Run("NonMemberForbidden", func(t *testing.T) {
		_, err := f.groups.Get(ctx, created.GroupID, outsider.ID.String())
		assert.ErrorIs(t, err, group.ErrNotMember)
	})

	t.Run("UnknownGroup", func(t *testing.T) {
		_, err := f.groups.Get(ctx, uuid.NewString(), member.ID.String())
		assert.ErrorIs(t, err, group.ErrGroupNotFound)
	})
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.seedUser(t, "alice")
	other := f.seedUser(t, "bob")

	_, err := f.groups.Create(ctx, u.ID.String(), group.CreateGroupDTO{
		GroupName: "Mine",
		Interval:  group.IntervalDaily,
	})
	require.NoError(t, err)
	_, err = f.groups.Create(ctx, other.ID.String(), group.CreateGroupDTO{
		GroupName: "Not mine",
		Interval:  group.IntervalDaily,
	})
	require.NoError(t, err)

	groups, err := f.groups.ListForUser(ctx, u.ID.String())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Mine", groups[0].GroupName)
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	founder := f.seedUser(t, "alice")
	joiner := f.seedUser(t, "bob")

	created, err := f.groups.Create(ctx, founder.ID.String(), group.CreateGroupDTO{
		GroupName: "Gym squad",
		Interval:  group.IntervalWeekly,
	})
	require.NoError(t, err)

	shared, err := f.goals.Create(ctx, created.GroupID, founder.ID.String(), "", goal.CreateGoalDTO{
		Type: goal.GoalTypeGroup, Title: "Lift", Activity: "weights", Metric: "sessions", Target: 6,
	})
	require.NoError(t, err)
	personal, err := f.goals.Create(ctx, created.GroupID, founder.ID.String(), founder.ID.String(), goal.CreateGoalDTO{
		Type: goal.GoalTypeIndividual, Title: "Run", Activity: "running", Metric: "km", Target: 10,
	})
	require.NoError(t, err)

	require.NoError(t, f.groups.AddMember(ctx, created.GroupID, joiner.ID.String()))

	g, err := f.groupRepo.FindByID(created.GroupID)
	require.NoError(t, err)
	assert.True(t, g.HasMember(joiner.ID.String()))

	sharedGoal, err := f.goalRepo.FindByID(shared.GoalID)
	require.NoError(t, err)
	assert.Equal(t, goal.ProgressMap{founder.ID.String(): 0, joiner.ID.String(): 0}, sharedGoal.Progress)

	personalGoal, err := f.goalRepo.FindByID(personal.GoalID)
	require.NoError(t, err)
	assert.Equal(t, goal.ProgressMap{founder.ID.String(): 0}, personalGoal.Progress)

	// Joining twice is a no-op.
	require.NoError(t, f.groups.AddMember(ctx, created.GroupID, joiner.ID.String()))
	g, err = f.groupRepo.FindByID(created.GroupID)
	require.NoError(t, err)
	assert.Len(t, g.UserIDs, 2)
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("LeaverDropsOutOfGroupGoals", func(t *testing.T) {
		f := setup(t)
		stayer := f.seedUser(t, "alice")
		leaver := f.seedUser(t, "bob")

		created, err := f.groups.Create(ctx, stayer.ID.String(), group.CreateGroupDTO{
			GroupName: "Cycling", Interval: group.IntervalWeekly,
		})
		require.NoError(t, err)
		require.NoError(t, f.groups.AddMember(ctx, created.GroupID, leaver.ID.String()))

		shared, err := f.goals.Create(ctx, created.GroupID, stayer.ID.String(), "", goal.CreateGoalDTO{
			Type: goal.GoalTypeGroup, Title: "Distance", Activity: "cycling", Metric: "km", Target: 100,
		})
		require.NoError(t, err)
		personal, err := f.goals.Create(ctx, created.GroupID, leaver.ID.String(), leaver.ID.String(), goal.CreateGoalDTO{
			Type: goal.GoalTypeIndividual, Title: "Climb", Activity: "cycling", Metric: "m", Target: 500,
		})
		require.NoError(t, err)

		require.NoError(t, f.groups.RemoveMember(ctx, created.GroupID, leaver.ID.String(), leaver.ID.String()))

		g, err := f.groupRepo.FindByID(created.GroupID)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.Equal(t, datatypes.JSONSlice[string]{stayer.ID.String()}, g.UserIDs)
		assert.Equal(t, datatypes.JSONSlice[string]{shared.GoalID}, g.GoalIDs)

		sharedGoal, err := f.goalRepo.FindByID(shared.GoalID)
		require.NoError(t, err)
		assert.Equal(t, goal.ProgressMap{stayer.ID.String(): 0}, sharedGoal.Progress)

		gone, err := f.goalRepo.FindByID(personal.GoalID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		stored, err := f.userRepo.FindByID(leaver.ID)
		require.NoError(t, err)
		assert.Empty(t, []string(stored.GroupIDs))
	})

	t.Run("LastMemberDeletesGroup", func(t *testing.T) {
		f := setup(t)
		u := f.seedUser(t, "alice")

		created, err := f.groups.Create(ctx, u.ID.String(), group.CreateGroupDTO{
			GroupName: "Solo", Interval: group.IntervalDaily,
		})
		require.NoError(t, err)
		g1, err := f.goals.Create(ctx, created.GroupID, u.ID.String(), "", goal.CreateGoalDTO{
			Type: goal.GoalTypeGroup, Title: "Read", Activity: "reading", Metric: "pages", Target: 30,
		})
		require.NoError(t, err)

		require.NoError(t, f.groups.RemoveMember(ctx, created.GroupID, u.ID.String(), u.ID.String()))

		g, err := f.groupRepo.FindByID(created.GroupID)
		require.NoError(t, err)
		assert.Nil(t, g)

		gone, err := f.goalRepo.FindByID(g1.GoalID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		stored, err := f.userRepo.FindByID(u.ID)
		require.NoError(t, err)
		assert.Empty(t, []string(stored.GroupIDs))
	})

	t.Run("NonMemberForbidden", func(t *testing.T) {
		f := setup(t)
		member := f.seedUser(t, "alice")
		outsider := f.seedUser(t, "bob")

		created, err := f.groups.Create(ctx, member.ID.String(), group.CreateGroupDTO{
			GroupName: "Private", Interval: group.IntervalDaily,
		})
		require.NoError(t, err)

		err = f.groups.RemoveMember(ctx, created.GroupID, member.ID.String(), outsider.ID.String())
		assert.ErrorIs(t, err, group.ErrNotMember)
	})

	t.Run("UnknownGroup", func(t *testing.T) {
		f := setup(t)
		u := f.seedUser(t, "alice")

		err := f.groups.RemoveMember(ctx, uuid.NewString(), u.ID.String(), u.ID.String())
		assert.ErrorIs(t, err, group.ErrGroupNotFound)
	})
}
