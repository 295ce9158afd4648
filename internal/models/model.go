package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base for all persisted resources. IDs are integer
// autoincrement values since every external interface identifies resources
// by positive integers.
type Model struct {
	ID uint64 `json:"id" gorm:"primaryKey" example:"87"` // ID of the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically. They are
// split from Model so that resources with composite natural keys can embed
// them on their own.
type Timestamps struct {
	CreatedAt time.Time `json:"dataCriacao" example:"2025-04-02T19:28:44.491514Z"`     // Time the resource was created
	UpdatedAt time.Time `json:"dataAtualizacao" example:"2025-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
//
// We already store them in UTC, but somehow reading them from the database
// returns them as +0000.
func (t *Timestamps) AfterFind(_ *gorm.DB) error {
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	return nil
}
