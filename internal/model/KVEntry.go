package model

import "time"

// KVEntry holds one serialized collection for the SQL storage drivers.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (e KVEntry) TableName() string {
	return "kv_entries"
}
