package user

import (
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/goal"
)

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, goalRepo goal.GoalRepository) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, goalRepo)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
