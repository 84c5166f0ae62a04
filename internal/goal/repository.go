package goal

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grouptivate/grouptivate-api/internal/group"
)

type GoalRepository interface {
	Create(g *Goal) error
	FindByID(id string) (*Goal, error)
	FindByIDs(ids []string) ([]*Goal, error)
	Save(g *Goal) error
	Delete(id string) error
	ListIndividualByUser(userID string) ([]*Goal, error)

	// group.GoalStore, so membership changes keep progress maps in sync.
	ViewsByIDs(ids []string) ([]group.GoalView, error)
	DeleteAllTx(tx *gorm.DB, ids []string) error
	DetachUserTx(tx *gorm.DB, ids []string, userID string) ([]string, error)
	SeedUserTx(tx *gorm.DB, ids []string, userID string) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

var _ group.GoalStore = (*goalRepository)(nil)

func (r *goalRepository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *goalRepository) FindByID(id string) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *goalRepository) FindByIDs(ids []string) ([]*Goal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var goals []*Goal
	if err := r.db.Where("id IN ?", ids).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Save(g *Goal) error {
	return r.db.Save(g).Error
}

func (r *goalRepository) Delete(id string) error {
	return r.db.Delete(&Goal{}, "id = ?", id).Error
}

func (r *goalRepository) ListIndividualByUser(userID string) ([]*Goal, error) {
	var goals []*Goal
	if err := r.db.Where("type = ?", GoalTypeIndividual).Find(&goals).Error; err != nil {
		return nil, err
	}
	owned := goals[:0]
	for _, g := range goals {
		if _, ok := g.Progress[userID]; ok {
			owned = append(owned, g)
		}
	}
	return owned, nil
}

func (r *goalRepository) ViewsByIDs(ids []string) ([]group.GoalView, error) {
	goals, err := r.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	views := make([]group.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, group.GoalView{
			GoalID:   g.ID.String(),
			Type:     string(g.Type),
			Title:    g.Title,
			Activity: g.Activity,
			Metric:   g.Metric,
			Target:   g.Target,
			Progress: map[string]float64(g.Progress),
		})
	}
	return views, nil
}

func (r *goalRepository) DeleteAllTx(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&Goal{}, "id IN ?", ids).Error
}

// DetachUserTx removes a departing member from every goal in ids. The
// member's individual goals are deleted outright; group goals drop the
// member's progress entry and survive. Returns ids of deleted goals.
func (r *goalRepository) DetachUserTx(tx *gorm.DB, ids []string, userID string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var goals []*Goal
	if err := tx.Where("id IN ?", ids).Find(&goals).Error; err != nil {
		return nil, err
	}

	var deleted []string
	for _, g := range goals {
		if g.Type == GoalTypeIndividual {
			if _, owned := g.Progress[userID]; !owned {
				continue
			}
			if err := tx.Delete(&Goal{}, "id = ?", g.ID).Error; err != nil {
				return nil, err
			}
			deleted = append(deleted, g.ID.String())
			continue
		}

		delete(g.Progress, userID)
		if err := tx.Model(g).Update("progress", g.Progress).Error; err != nil {
			return nil, err
		}
	}
	return deleted, nil
}

func (r *goalRepository) SeedUserTx(tx *gorm.DB, ids []string, userID string) error {
	if len(ids) == 0 {
		return nil
	}
	var goals []*Goal
	if err := tx.Where("id IN ? AND type = ?", ids, GoalTypeGroup).Find(&goals).Error; err != nil {
		return err
	}
	for _, g := range goals {
		g.Progress[userID] = 0
		if err := tx.Model(g).Update("progress", g.Progress).Error; err != nil {
			return err
		}
	}
	return nil
}
