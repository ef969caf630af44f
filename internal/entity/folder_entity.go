package entity

import (
	"time"

	"github.com/google/uuid"
)

type Folder struct {
	Id         uuid.UUID
	FolderName string
	TeacherId  uuid.UUID
	SubjectId  uuid.UUID
	Teacher    *Teacher
	Subject    *Subject
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
