package entity

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	Id           uuid.UUID
	ClassName    string
	AcademicYear string
	TeacherId    uuid.UUID
	Teacher      *Teacher
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
