package goal

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProgressMap maps a member's user id to their accumulated progress for the
// current interval. Stored as a jsonb column.
type ProgressMap map[string]float64

func (p ProgressMap) Value() (driver.Value, error) {
	if p == nil {
		p = ProgressMap{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *ProgressMap) Scan(value interface{}) error {
	if value == nil {
		*p = ProgressMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan type %T into ProgressMap", value)
	}
}

func (ProgressMap) GormDataType() string {
	return "jsonb"
}

// Sum is the combined progress of all members.
func (p ProgressMap) Sum() float64 {
	var total float64
	for _, v := range p {
		total += v
	}
	return total
}

type Goal struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Type      GoalType    `gorm:"type:text;not null" json:"type"`
	Title     string      `gorm:"type:text;not null" json:"title"`
	Activity  string      `gorm:"type:text;not null" json:"activity"`
	Metric    string      `gorm:"type:text;not null" json:"metric"`
	Target    float64     `gorm:"not null" json:"target"`
	Progress  ProgressMap `gorm:"type:jsonb;not null" json:"progress"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
