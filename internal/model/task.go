package model

import "time"

// Task is an owner-scoped to-do item. Every query against it carries the
// owner's user id as a predicate; there is no cross-user visibility.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	TaskName  string    `gorm:"type:varchar(255);not null" json:"task_name"`
	Status    string    `gorm:"type:varchar(32);not null;default:open" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
