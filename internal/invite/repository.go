package invite

import (
	"errors"

	"gorm.io/gorm"
)

type InviteRepository interface {
	Create(i *Invite) error
	FindByID(id string) (*Invite, error)
	FindByGroupAndInvitee(groupID string, inviteeID string) (*Invite, error)
	ListByInvitee(inviteeID string) ([]*Invite, error)
	Delete(id string) error
}

type inviteRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(i *Invite) error {
	return r.db.Create(i).Error
}

func (r *inviteRepository) FindByID(id string) (*Invite, error) {
	var i Invite
	if err := r.db.First(&i, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *inviteRepository) FindByGroupAndInvitee(groupID string, inviteeID string) (*Invite, error) {
	var i Invite
	err := r.db.First(&i, "group_id = ? AND invitee_id = ?", groupID, inviteeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *inviteRepository) ListByInvitee(inviteeID string) ([]*Invite, error) {
	var invites []*Invite
	if err := r.db.Where("invitee_id = ?", inviteeID).Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) Delete(id string) error {
	return r.db.Delete(&Invite{}, "id = ?", id).Error
}
