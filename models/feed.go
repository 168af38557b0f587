package models

import "time"

// Feed is one entry in the global feed. Entries are append-only: they carry
// the author's username and a server-assigned timestamp and are never
// mutated or deleted.
type Feed struct {
	ID       uint      `gorm:"primaryKey;column:id" json:"id"`
	Username string    `gorm:"column:username;size:255" json:"username"`
	Datetime time.Time `gorm:"column:datetime" json:"datetime"`
	Message  string    `gorm:"type:text" json:"message"`
}

// TableName overrides the table name used by GORM
func (Feed) TableName() string {
	return "feed"
}
