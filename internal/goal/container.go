package goal

import (
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/group"
)

type GoalContainer struct {
	Handler *Handler
	Service GoalService
	Repo    GoalRepository
}

func NewGoalContainer(db *gorm.DB, groupRepo group.GroupRepository) *GoalContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, groupRepo)
	handler := NewHandler(service)

	return &GoalContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
