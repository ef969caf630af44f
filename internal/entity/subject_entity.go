package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	Id          uuid.UUID
	SubjectName string
	SubjectCode string
	TeacherId   uuid.UUID
	ClassId     uuid.UUID
	Teacher     *Teacher
	Class       *Class
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
