package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus is an open enumeration; the constants are the values the UI offers.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskPriority is an open enumeration; the constants are the values the UI offers.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// TaskStatuses lists the offered statuses in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// TaskPriorities lists the offered priorities from lowest to highest.
var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// Task belongs to exactly one project and is optionally assigned to a user.
type Task struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"type:text"`
	DueDate     time.Time    `json:"due_date" gorm:"not null;index"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(32);not null;default:'MEDIUM';index"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(32);not null;default:'TODO';index"`
	ProjectID   uuid.UUID    `json:"project_id" gorm:"type:char(36);not null;index"`
	AssigneeID  *uuid.UUID   `json:"assignee_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt   time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Assignee *User    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
