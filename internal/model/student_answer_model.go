package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentAnswer struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName       string
	Content        string `gorm:"type:text"`
	FilePath       string
	FileSize       int64
	FileType       string
	CollectionName string    `gorm:"uniqueIndex"` // write-once at creation
	StudentId      uuid.UUID `gorm:"type:uuid;index"`
	AnswerKeyId    uuid.UUID `gorm:"type:uuid;index"`
	FolderId       uuid.UUID `gorm:"type:uuid;index"`
	Processed      bool      `gorm:"default:false"`
	ProcessedAt    *time.Time
	Status         string     `gorm:"default:unprocessed"`
	Student        *Student   `gorm:"foreignKey:StudentId"`
	AnswerKey      *AnswerKey `gorm:"foreignKey:AnswerKeyId"`
	Folder         *Folder    `gorm:"foreignKey:FolderId"`
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}
