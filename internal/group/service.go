package group

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/config"
)

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrNotMember       = errors.New("user is not a member of the group")
	ErrInvalidInterval = errors.New("invalid interval")
)

// UserStore is the slice of the user store the group service needs. The
// user package implements it; defining it here keeps the import direction
// one-way.
type UserStore interface {
	AddGroupTx(tx *gorm.DB, userID string, groupID string) error
	RemoveGroupTx(tx *gorm.DB, userID string, groupID string) error
	NameMap(ids []string) (map[string]string, error)
}

// GoalStore is the slice of the goal store membership changes must keep in
// sync. Implemented by the goal package.
type GoalStore interface {
	ViewsByIDs(ids []string) ([]GoalView, error)
	DeleteAllTx(tx *gorm.DB, ids []string) error
	// DetachUserTx removes userID from every goal in ids: individual goals
	// owned by the user are deleted outright, group goals lose the user's
	// progress entry. Returns the ids of deleted goals.
	DetachUserTx(tx *gorm.DB, ids []string, userID string) ([]string, error)
	// SeedUserTx adds a zero progress entry for userID to every group-type
	// goal in ids. Individual goals are left untouched.
	SeedUserTx(tx *gorm.DB, ids []string, userID string) error
}

type Service interface {
	Create(ctx context.Context, userID string, dto CreateGroupDTO) (*CreateGroupResponse, error)
	Get(ctx context.Context, groupID string, requesterID string) (*GroupResponse, error)
	ListForUser(ctx context.Context, userID string) ([]GroupResponse, error)
	AddMember(ctx context.Context, groupID string, userID string) error
	RemoveMember(ctx context.Context, groupID string, userID string, requesterID string) error
}

type service struct {
	db    *gorm.DB
	repo  GroupRepository
	users UserStore
	goals GoalStore
}

func NewService(db *gorm.DB, repo GroupRepository, users UserStore, goals GoalStore) Service {
	return &service{db: db, repo: repo, users: users, goals: goals}
}

func (s *service) Create(ctx context.Context, userID string, dto CreateGroupDTO) (*CreateGroupResponse, error) {
	log := config.WithContext(ctx)

	if !dto.Interval.IsValid() {
		return nil, ErrInvalidInterval
	}

	g := Group{
		ID:       uuid.New(),
		Name:     dto.GroupName,
		Interval: dto.Interval,
		UserIDs:  datatypes.JSONSlice[string]{userID},
		GoalIDs:  datatypes.JSONSlice[string]{},
		Streak:   0,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		return s.users.AddGroupTx(tx, userID, g.ID.String())
	})
	if err != nil {
		log.WithError(err).Error("Failed to create group")
		return nil, err
	}

	log.WithField("group_id", g.ID).Info("Group created")
	return &CreateGroupResponse{GroupID: g.ID.String()}, nil
}

func (s *service) Get(ctx context.Context, groupID string, requesterID string) (*GroupResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.repo.FindByID(groupID)
	if err != nil {
		log.WithError(err).Error("Failed to load group")
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	if !g.HasMember(requesterID) {
		log.WithField("group_id", groupID).Warn("Non-member requested group")
		return nil, ErrNotMember
	}

	return s.toResponse(g)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]GroupResponse, error) {
	log := config.WithContext(ctx)

	groups, err := s.repo.FindByMember(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list groups")
		return nil, err
	}

	responses := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp, err := s.toResponse(g)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// AddMember joins a user to the group and seeds a zero progress entry on
// every group-type goal. Invoked by the invite accept path.
func (s *service) AddMember(ctx context.Context, groupID string, userID string) error {
	log := config.WithContext(ctx)

	g, err := s.repo.FindByID(groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	if g.HasMember(userID) {
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		g.UserIDs = append(g.UserIDs, userID)
		if err := tx.Model(g).Update("user_ids", g.UserIDs).Error; err != nil {
			return err
		}
		if err := s.users.AddGroupTx(tx, userID, groupID); err != nil {
			return err
		}
		return s.goals.SeedUserTx(tx, g.GoalIDs, userID)
	})
	if err != nil {
		log.WithError(err).Error("Failed to add group member")
		return err
	}

	log.WithField("group_id", groupID).WithField("user_id", userID).Info("Member joined group")
	return nil
}

// RemoveMember takes a user out of the group. The last member leaving
// deletes the group and every goal it owns; otherwise the leaver's
// individual goals are deleted and their entry is dropped from every
// group goal's progress map.
func (s *service) RemoveMember(ctx context.Context, groupID string, userID string, requesterID string) error {
	log := config.WithContext(ctx)

	g, err := s.repo.FindByID(groupID)
	if err != nil {
		log.WithError(err).Error("Failed to load group")
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	if !g.HasMember(requesterID) {
		log.WithField("group_id", groupID).Warn("Non-member attempted removal")
		return ErrNotMember
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		kept := make(datatypes.JSONSlice[string], 0, len(g.UserIDs))
		for _, id := range g.UserIDs {
			if id != userID {
				kept = append(kept, id)
			}
		}
		g.UserIDs = kept

		if err := s.users.RemoveGroupTx(tx, userID, groupID); err != nil {
			return err
		}

		if len(g.UserIDs) == 0 {
			if err := s.goals.DeleteAllTx(tx, g.GoalIDs); err != nil {
				return err
			}
			return tx.Delete(&Group{}, "id = ?", g.ID).Error
		}

		deleted, err := s.goals.DetachUserTx(tx, g.GoalIDs, userID)
		if err != nil {
			return err
		}
		if len(deleted) > 0 {
			remaining := make(datatypes.JSONSlice[string], 0, len(g.GoalIDs))
			for _, id := range g.GoalIDs {
				if !contains(deleted, id) {
					remaining = append(remaining, id)
				}
			}
			g.GoalIDs = remaining
		}

		return tx.Model(&Group{}).Where("id = ?", g.ID).
			Updates(map[string]interface{}{"user_ids": g.UserIDs, "goal_ids": g.GoalIDs}).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to remove group member")
		return err
	}

	log.WithField("group_id", groupID).WithField("user_id", userID).Info("Member removed from group")
	return nil
}

func (s *service) toResponse(g *Group) (*GroupResponse, error) {
	users, err := s.users.NameMap(g.UserIDs)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ViewsByIDs(g.GoalIDs)
	if err != nil {
		return nil, err
	}

	return &GroupResponse{
		GroupID:   g.ID.String(),
		GroupName: g.Name,
		Users:     users,
		Interval:  g.Interval,
		Goals:     goals,
		Streak:    g.Streak,
	}, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
