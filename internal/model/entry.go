package model

import (
	"time"
)

// Entry represents a stored problem submission
type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Problem   string    `json:"problem" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);default:Anonymous"`
	Email     string    `json:"email" gorm:"type:varchar(255);default:''"`
	CreatedAt time.Time `json:"created_at"`
	UUID      string    `json:"uuid" gorm:"type:varchar(36);not null;uniqueIndex"`
}

// TableName specifies the table name for Entry
func (Entry) TableName() string {
	return "problems"
}
