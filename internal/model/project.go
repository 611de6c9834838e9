package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is owned by its manager; only the manager may change it or its tasks.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	ManagerID   uuid.UUID `json:"manager_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Manager *User  `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Tasks   []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
