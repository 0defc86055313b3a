package rdb

import "time"

// SlotRecord is the RDB persistence model for one opaque storage slot.
// Table name: slots
type SlotRecord struct {
	Key       string    `gorm:"primaryKey;type:text;not null"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SlotRecord) TableName() string { return "slots" }
