package entity

import (
	"time"

	"github.com/google/uuid"
)

type Term struct {
	Id        uuid.UUID
	TermName  string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
