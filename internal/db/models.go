package db

import (
	"time"

	"gorm.io/datatypes"
)

// NightSnapshot is the durable slot for one game night: the full ordered
// round list serialized as JSON, tagged with a schema version.
type NightSnapshot struct {
	ID            uint           `gorm:"primaryKey"`
	ShareCode     string         `gorm:"size:12;uniqueIndex;not null"`
	SchemaVersion int            `gorm:"not null"`
	Rounds        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	Events        []Event        `gorm:"foreignKey:NightID"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	NightID   uint           `gorm:"index;not null"`
	RoundID   *int           `gorm:"index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
