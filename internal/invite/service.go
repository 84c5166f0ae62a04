package invite

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/group"
	"github.com/grouptivate/grouptivate-api/internal/user"
)

var (
	ErrInviteNotFound  = errors.New("invite not found")
	ErrGroupNotFound   = group.ErrGroupNotFound
	ErrNotMember       = group.ErrNotMember
	ErrInviteeNotFound = errors.New("invitee does not exist")
	ErrAlreadyInvited  = errors.New("user is already invited to this group")
	// ErrNotInvitee is returned whether the invite exists for someone else
	// or not at all beyond the id lookup, so responses never reveal another
	// user's invites.
	ErrNotInvitee = errors.New("invite is not for this user")
)

type Service interface {
	Create(ctx context.Context, requesterID string, dto CreateInviteDTO) error
	ListForUser(ctx context.Context, userID string) ([]InviteResponse, error)
	Delete(ctx context.Context, inviteID string, requesterID string) error
	Respond(ctx context.Context, inviteID string, requesterID string, accepted bool) error
}

type service struct {
	repo      InviteRepository
	groupRepo group.GroupRepository
	groupSvc  group.Service
	userRepo  user.UserRepository
}

func NewService(repo InviteRepository, groupRepo group.GroupRepository, groupSvc group.Service, userRepo user.UserRepository) Service {
	return &service{repo: repo, groupRepo: groupRepo, groupSvc: groupSvc, userRepo: userRepo}
}

func (s *service) Create(ctx context.Context, requesterID string, dto CreateInviteDTO) error {
	log := config.WithContext(ctx)

	grp, err := s.groupRepo.FindByID(dto.GroupID)
	if err != nil {
		log.WithError(err).Error("Failed to load group")
		return err
	}
	if grp == nil {
		return ErrGroupNotFound
	}
	if !grp.HasMember(requesterID) {
		log.WithField("group_id", dto.GroupID).Warn("Non-member attempted invitation")
		return ErrNotMember
	}

	invitee, err := s.userRepo.FindByName(dto.InviteeName)
	if err != nil {
		log.WithError(err).Error("Failed to look up invitee")
		return err
	}
	if invitee == nil {
		return ErrInviteeNotFound
	}

	existing, err := s.repo.FindByGroupAndInvitee(dto.GroupID, invitee.ID.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyInvited
	}

	inv := Invite{
		ID:        uuid.New(),
		GroupID:   dto.GroupID,
		InviteeID: invitee.ID.String(),
		InviterID: requesterID,
	}
	if err := s.repo.Create(&inv); err != nil {
		log.WithError(err).Error("Failed to create invite")
		return err
	}

	log.WithField("invite_id", inv.ID).Info("Invite created")
	return nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]InviteResponse, error) {
	log := config.WithContext(ctx)

	invites, err := s.repo.ListByInvitee(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list invites")
		return nil, err
	}

	responses := make([]InviteResponse, 0, len(invites))
	for _, inv := range invites {
		resp := InviteResponse{InviteID: inv.ID.String()}

		if grp, err := s.groupRepo.FindByID(inv.GroupID); err == nil && grp != nil {
			resp.GroupName = grp.Name
		}
		if names, err := s.userRepo.NameMap([]string{inv.InviterID}); err == nil {
			resp.InviterName = names[inv.InviterID]
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *service) Delete(ctx context.Context, inviteID string, requesterID string) error {
	log := config.WithContext(ctx)

	inv, err := s.repo.FindByID(inviteID)
	if err != nil {
		return err
	}
	if inv == nil {
		return ErrInviteNotFound
	}

	grp, err := s.groupRepo.FindByID(inv.GroupID)
	if err != nil {
		return err
	}
	if grp == nil {
		return ErrGroupNotFound
	}
	if !grp.HasMember(requesterID) {
		log.WithField("invite_id", inviteID).Warn("Non-member attempted invite deletion")
		return ErrNotMember
	}

	return s.repo.Delete(inviteID)
}

// Respond resolves an invite. Accepting joins the invitee to the group and
// seeds their progress on every group goal; either answer consumes the
// invite.
func (s *service) Respond(ctx context.Context, inviteID string, requesterID string, accepted bool) error {
	log := config.WithContext(ctx)

	inv, err := s.repo.FindByID(inviteID)
	if err != nil {
		log.WithError(err).Error("Failed to load invite")
		return err
	}
	if inv == nil {
		return ErrInviteNotFound
	}
	if inv.InviteeID != requesterID {
		log.WithField("invite_id", inviteID).Warn("Invite response from the wrong user")
		return ErrNotInvitee
	}

	if accepted {
		if err := s.groupSvc.AddMember(ctx, inv.GroupID, requesterID); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(inviteID); err != nil {
		log.WithError(err).Error("Failed to delete resolved invite")
		return err
	}

	log.WithField("invite_id", inviteID).WithField("accepted", accepted).Info("Invite resolved")
	return nil
}
