package invite

import (
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/group"
	"github.com/grouptivate/grouptivate-api/internal/user"
)

type InviteContainer struct {
	Handler *Handler
	Service Service
}

func NewInviteContainer(db *gorm.DB, groupRepo group.GroupRepository, groupSvc group.Service, userRepo user.UserRepository) *InviteContainer {
	repo := NewRepository(db)
	service := NewService(repo, groupRepo, groupSvc, userRepo)
	handler := NewHandler(service)

	return &InviteContainer{
		Handler: handler,
		Service: service,
	}
}
