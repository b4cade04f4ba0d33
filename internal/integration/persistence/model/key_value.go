package model

import "time"

// KeyValueModel represents the key_values table in the database.
type KeyValueModel struct {
	Key       string    `gorm:"column:storage_key;type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the KeyValueModel.
func (KeyValueModel) TableName() string {
	return "key_values"
}
