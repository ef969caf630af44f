package model

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Teacher) TableName() string {
	return "teachers"
}
