package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(u *User) error
	FindByID(id uuid.UUID) (*User, error)
	FindByName(name string) (*User, error)
	FindByIDs(ids []string) ([]*User, error)
	NameMap(ids []string) (map[string]string, error)
	AddGroupTx(tx *gorm.DB, userID string, groupID string) error
	RemoveGroupTx(tx *gorm.DB, userID string, groupID string) error
	TouchLastSync(id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByName(name string) (*User, error) {
	var u User
	if err := r.db.First(&u, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByIDs(ids []string) ([]*User, error) {
	var users []*User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// NameMap resolves user ids to display names, dropping unknown ids.
func (r *userRepository) NameMap(ids []string) (map[string]string, error) {
	users, err := r.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.Name
	}
	return names, nil
}

// AddGroupTx and RemoveGroupTx run against the caller's handle so services
// can compose them into a surrounding transaction.
func (r *userRepository) AddGroupTx(tx *gorm.DB, userID string, groupID string) error {
	var u User
	if err := tx.First(&u, "id = ?", userID).Error; err != nil {
		return err
	}
	for _, id := range u.GroupIDs {
		if id == groupID {
			return nil
		}
	}
	u.GroupIDs = append(u.GroupIDs, groupID)
	return tx.Model(&u).Update("group_ids", u.GroupIDs).Error
}

func (r *userRepository) RemoveGroupTx(tx *gorm.DB, userID string, groupID string) error {
	var u User
	if err := tx.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	kept := make(datatypes.JSONSlice[string], 0, len(u.GroupIDs))
	for _, id := range u.GroupIDs {
		if id != groupID {
			kept = append(kept, id)
		}
	}
	return tx.Model(&u).Update("group_ids", kept).Error
}

func (r *userRepository) TouchLastSync(id uuid.UUID) error {
	return r.db.Model(&User{}).Where("id = ?", id).
		Update("last_sync", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
