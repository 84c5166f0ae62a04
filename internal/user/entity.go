package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                      `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Password  string                      `gorm:"type:text;not null" json:"-"`
	GroupIDs  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"group_ids"`
	LastSync  time.Time                   `json:"last_sync"`
	CreatedAt time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}
