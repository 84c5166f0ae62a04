package container

import (
	"context"
	"log"
	"os"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/goal"
	"github.com/grouptivate/grouptivate-api/internal/group"
	"github.com/grouptivate/grouptivate-api/internal/invite"
	"github.com/grouptivate/grouptivate-api/internal/streak"
	"github.com/grouptivate/grouptivate-api/internal/user"
)

type Container struct {
	UserContainer   *user.UserContainer
	GroupContainer  *group.GroupContainer
	GoalContainer   *goal.GoalContainer
	InviteContainer *invite.InviteContainer
	StreakEvaluator *streak.Evaluator
	StreakScheduler *streak.Scheduler
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&user.User{}, &group.Group{}, &goal.Goal{}, &invite.Invite{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	groupRepo := group.NewRepository(config.DB)
	goalContainer := goal.NewGoalContainer(config.DB, groupRepo)
	userContainer := user.NewUserContainer(config.DB, goalContainer.Repo)
	groupContainer := group.NewGroupContainer(config.DB, userContainer.Repo, goalContainer.Repo)
	inviteContainer := invite.NewInviteContainer(config.DB, groupContainer.Repo, groupContainer.Service, userContainer.Repo)

	evaluator := streak.NewEvaluator(groupContainer.Repo, goalContainer.Repo)
	scheduler := streak.NewScheduler(evaluator)

	return &Container{
		UserContainer:   userContainer,
		GroupContainer:  groupContainer,
		GoalContainer:   goalContainer,
		InviteContainer: inviteContainer,
		StreakEvaluator: evaluator,
		StreakScheduler: scheduler,
	}
}
