package entity

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	Id        uuid.UUID
	Name      string
	Email     string
	ClassId   uuid.UUID
	Class     *Class
	CreatedAt time.Time
	UpdatedAt *time.Time
}
