package entity

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	Id        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
