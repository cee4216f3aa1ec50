package models

import (
	"time"
)

// Model carries the columns shared by every record
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All lists every model managed by migrations, parents first
func All() []any {
	return []any{&Podcast{}, &Episode{}, &User{}}
}
