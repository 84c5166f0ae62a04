package group

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(g *Group) error
	FindByID(id string) (*Group, error)
	FindByGoalID(goalID string) (*Group, error)
	MapByGoalIDs(goalIDs []string) (map[string]*Group, error)
	FindByMember(userID string) ([]*Group, error)
	FindByInterval(interval Interval) ([]*Group, error)
	Save(g *Group) error
	Delete(id string) error

	AppendGoalTx(tx *gorm.DB, groupID string, goalID string) error
	RemoveGoalTx(tx *gorm.DB, groupID string, goalID string) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(g *Group) error {
	return r.db.Create(g).Error
}

func (r *groupRepository) FindByID(id string) (*Group, error) {
	var g Group
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// FindByGoalID resolves the single group whose goal list contains goalID.
func (r *groupRepository) FindByGoalID(goalID string) (*Group, error) {
	var groups []*Group
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		for _, id := range g.GoalIDs {
			if id == goalID {
				return g, nil
			}
		}
	}
	return nil, nil
}

// MapByGoalIDs resolves each goal id to its owning group in a single pass,
// so batch callers do not rescan the table per id. Ids no group owns are
// absent from the result.
func (r *groupRepository) MapByGoalIDs(goalIDs []string) (map[string]*Group, error) {
	owners := make(map[string]*Group, len(goalIDs))
	if len(goalIDs) == 0 {
		return owners, nil
	}

	wanted := make(map[string]struct{}, len(goalIDs))
	for _, id := range goalIDs {
		wanted[id] = struct{}{}
	}

	var groups []*Group
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		for _, id := range g.GoalIDs {
			if _, ok := wanted[id]; ok {
				owners[id] = g
			}
		}
	}
	return owners, nil
}

func (r *groupRepository) FindByMember(userID string) ([]*Group, error) {
	var groups []*Group
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}
	member := groups[:0]
	for _, g := range groups {
		if g.HasMember(userID) {
			member = append(member, g)
		}
	}
	return member, nil
}

func (r *groupRepository) FindByInterval(interval Interval) ([]*Group, error) {
	var groups []*Group
	if err := r.db.Where("interval = ?", interval).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) Save(g *Group) error {
	return r.db.Save(g).Error
}

func (r *groupRepository) Delete(id string) error {
	return r.db.Delete(&Group{}, "id = ?", id).Error
}

func (r *groupRepository) AppendGoalTx(tx *gorm.DB, groupID string, goalID string) error {
	var g Group
	if err := tx.First(&g, "id = ?", groupID).Error; err != nil {
		return err
	}
	g.GoalIDs = append(g.GoalIDs, goalID)
	return tx.Model(&g).Update("goal_ids", g.GoalIDs).Error
}

func (r *groupRepository) RemoveGoalTx(tx *gorm.DB, groupID string, goalID string) error {
	var g Group
	if err := tx.First(&g, "id = ?", groupID).Error; err != nil {
		return err
	}
	kept := make(datatypes.JSONSlice[string], 0, len(g.GoalIDs))
	for _, id := range g.GoalIDs {
		if id != goalID {
			kept = append(kept, id)
		}
	}
	return tx.Model(&g).Update("goal_ids", kept).Error
}
