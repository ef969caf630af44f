package model

import (
	"time"

	"github.com/google/uuid"
)

type Folder struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolderName string
	TeacherId  uuid.UUID `gorm:"type:uuid;index"`
	SubjectId  uuid.UUID `gorm:"type:uuid;index"`
	Teacher    *Teacher  `gorm:"foreignKey:TeacherId"`
	Subject    *Subject  `gorm:"foreignKey:SubjectId"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (Folder) TableName() string {
	return "folders"
}
