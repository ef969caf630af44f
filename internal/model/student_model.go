package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	ClassId   uuid.UUID `gorm:"type:uuid;index"`
	Class     *Class    `gorm:"foreignKey:ClassId"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Student) TableName() string {
	return "students"
}
