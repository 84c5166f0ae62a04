package group

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Group struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                      `gorm:"type:text;not null" json:"name"`
	Interval  Interval                    `gorm:"type:text;not null" json:"interval"`
	UserIDs   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"user_ids"`
	GoalIDs   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"goal_ids"`
	Streak    int                         `gorm:"not null;default:0" json:"streak"`
	CreatedAt time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasMember reports whether the user is currently in the group.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
