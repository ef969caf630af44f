package model

import (
	"time"

	"github.com/google/uuid"
)

type Term struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TermName  string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Term) TableName() string {
	return "terms"
}
