package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/group"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrGroupNotFound = group.ErrGroupNotFound
	ErrNotMember     = group.ErrNotMember
	ErrNotGoalOwner  = errors.New("goal does not belong to the user")
	ErrOwnerRequired = errors.New("individual goals require an owner")
	ErrInvalidType   = errors.New("invalid goal type")
)

type GoalService interface {
	Create(ctx context.Context, groupID string, requesterID string, ownerID string, dto CreateGoalDTO) (*CreateGoalResponse, error)
	Delete(ctx context.Context, goalID string, requesterID string) error
	Patch(ctx context.Context, requesterID string, updates []ProgressPatch) error
}

type goalService struct {
	db        *gorm.DB
	repo      GoalRepository
	groupRepo group.GroupRepository
}

func NewService(db *gorm.DB, repo GoalRepository, groupRepo group.GroupRepository) GoalService {
	return &goalService{db: db, repo: repo, groupRepo: groupRepo}
}

// Create inserts a goal into the requester's group. Group goals start with a
// zero progress entry per current member; individual goals carry a single
// entry for the owner, who must be a current member.
func (s *goalService) Create(ctx context.Context, groupID string, requesterID string, ownerID string, dto CreateGoalDTO) (*CreateGoalResponse, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}

	grp, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		log.WithError(err).Error("Failed to load group")
		return nil, err
	}
	if grp == nil {
		return nil, ErrGroupNotFound
	}
	if !grp.HasMember(requesterID) {
		log.WithField("group_id", groupID).Warn("Non-member attempted goal creation")
		return nil, ErrNotMember
	}

	progress := ProgressMap{}
	if dto.Type == GoalTypeIndividual {
		if ownerID == "" {
			return nil, ErrOwnerRequired
		}
		if !grp.HasMember(ownerID) {
			log.WithField("owner_id", ownerID).Warn("Goal owner is not a group member")
			return nil, ErrNotMember
		}
		progress[ownerID] = 0
	} else {
		for _, memberID := range grp.UserIDs {
			progress[memberID] = 0
		}
	}

	g := Goal{
		ID:       uuid.New(),
		Type:     dto.Type,
		Title:    dto.Title,
		Activity: dto.Activity,
		Metric:   dto.Metric,
		Target:   dto.Target,
		Progress: progress,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		return s.groupRepo.AppendGoalTx(tx, groupID, g.ID.String())
	})
	if err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return &CreateGoalResponse{GoalID: g.ID.String()}, nil
}

// Delete removes a goal from its group. Any member of the owning group may
// delete any of its goals, including individual goals of other members;
// this mirrors the product's trust model inside a group.
func (s *goalService) Delete(ctx context.Context, goalID string, requesterID string) error {
	log := config.WithContext(ctx)

	grp, err := s.groupRepo.FindByGoalID(goalID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve goal's group")
		return err
	}
	if grp == nil {
		return ErrGoalNotFound
	}
	if !grp.HasMember(requesterID) {
		log.WithField("goal_id", goalID).Warn("Non-member attempted goal deletion")
		return ErrNotMember
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.groupRepo.RemoveGoalTx(tx, grp.ID.String(), goalID); err != nil {
			return err
		}
		return tx.Delete(&Goal{}, "id = ?", goalID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	log.WithField("goal_id", goalID).Info("Goal deleted")
	return nil
}

// Patch applies a batch of progress updates for the requester. The whole
// batch is validated before anything is written: the requester must belong
// to every group referenced, every goal must exist, and individual goals
// must already carry the requester's progress entry. Each update sets the
// requester's accumulated progress, it does not increment it.
func (s *goalService) Patch(ctx context.Context, requesterID string, updates []ProgressPatch) error {
	log := config.WithContext(ctx)

	if len(updates) == 0 {
		return nil
	}

	uniqueIDs := make([]string, 0, len(updates))
	seen := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		if _, ok := seen[u.GoalID]; ok {
			continue
		}
		seen[u.GoalID] = struct{}{}
		uniqueIDs = append(uniqueIDs, u.GoalID)
	}

	owners, err := s.groupRepo.MapByGoalIDs(uniqueIDs)
	if err != nil {
		log.WithError(err).Error("Failed to resolve goal groups")
		return err
	}
	checkedGroups := make(map[string]struct{})
	for _, id := range uniqueIDs {
		grp, ok := owners[id]
		if !ok {
			continue
		}
		if _, done := checkedGroups[grp.ID.String()]; done {
			continue
		}
		checkedGroups[grp.ID.String()] = struct{}{}
		if !grp.HasMember(requesterID) {
			log.WithField("group_id", grp.ID).Warn("Progress patch for a foreign group")
			return ErrNotMember
		}
	}

	goals, err := s.repo.FindByIDs(uniqueIDs)
	if err != nil {
		log.WithError(err).Error("Failed to load goals")
		return err
	}
	if len(goals) != len(uniqueIDs) {
		log.WithField("requested", len(uniqueIDs)).WithField("found", len(goals)).
			Warn("Progress patch referenced unknown goals")
		return ErrGoalNotFound
	}

	byID := make(map[string]*Goal, len(goals))
	for _, g := range goals {
		byID[g.ID.String()] = g
	}

	for _, g := range goals {
		if g.Type != GoalTypeIndividual {
			continue
		}
		if _, owned := g.Progress[requesterID]; !owned {
			log.WithField("goal_id", g.ID).Warn("Progress patch on another member's goal")
			return ErrNotGoalOwner
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			g := byID[u.GoalID]
			g.Progress[requesterID] = u.Progress
			if err := tx.Model(g).Update("progress", g.Progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to apply progress patch")
		return err
	}

	return nil
}
