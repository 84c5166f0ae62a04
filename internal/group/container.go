package group

import "gorm.io/gorm"

type GroupContainer struct {
	Handler *Handler
	Service Service
	Repo    GroupRepository
}

func NewGroupContainer(db *gorm.DB, users UserStore, goals GoalStore) *GroupContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, users, goals)
	handler := NewHandler(service)

	return &GroupContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
