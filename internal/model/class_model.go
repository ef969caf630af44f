package model

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClassName    string
	AcademicYear string
	TeacherId    uuid.UUID `gorm:"type:uuid;index"`
	Teacher      *Teacher  `gorm:"foreignKey:TeacherId"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (Class) TableName() string {
	return "classes"
}
