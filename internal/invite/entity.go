package invite

import (
	"time"

	"github.com/google/uuid"
)

type Invite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID   string    `gorm:"type:uuid;not null;index" json:"group_id"`
	InviteeID string    `gorm:"type:uuid;not null;index" json:"invitee_id"`
	InviterID string    `gorm:"type:uuid;not null" json:"inviter_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
