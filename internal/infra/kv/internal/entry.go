package internal

import "time"

type Entry struct {
	Key       string `gorm:"primaryKey;column:entry_key"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}
