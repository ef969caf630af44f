package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerKey struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName       string
	Content        string `gorm:"type:text"`
	FilePath       string
	FileSize       int64
	FileType       string
	CollectionName string `gorm:"uniqueIndex"` // write-once at creation
	SubjectId      uuid.UUID `gorm:"type:uuid;index"`
	TermId         uuid.UUID `gorm:"type:uuid;index"`
	Processed      bool      `gorm:"default:false"`
	ProcessedAt    *time.Time
	Status         string   `gorm:"default:unprocessed"`
	Subject        *Subject `gorm:"foreignKey:SubjectId"`
	Term           *Term    `gorm:"foreignKey:TermId"`
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (AnswerKey) TableName() string {
	return "answer_keys"
}
