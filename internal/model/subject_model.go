package model

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectName string
	SubjectCode string
	TeacherId   uuid.UUID `gorm:"type:uuid;index"`
	ClassId     uuid.UUID `gorm:"type:uuid;index"`
	Teacher     *Teacher  `gorm:"foreignKey:TeacherId"`
	Class       *Class    `gorm:"foreignKey:ClassId"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (Subject) TableName() string {
	return "subjects"
}
