package dto

import (
	"time"

	"github.com/google/uuid"
)

// Requests and responses for the organizational records. All follow the same
// create/update/show shape.

type CreateTeacherRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateTeacherRequest struct {
	Id    uuid.UUID
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ShowTeacherResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateClassRequest struct {
	ClassName    string    `json:"class_name" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required"`
	TeacherId    uuid.UUID `json:"teacher_id" validate:"required"`
}

type UpdateClassRequest struct {
	Id           uuid.UUID
	ClassName    string    `json:"class_name" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required"`
	TeacherId    uuid.UUID `json:"teacher_id" validate:"required"`
}

type ShowClassResponse struct {
	Id           uuid.UUID  `json:"id"`
	ClassName    string     `json:"class_name"`
	AcademicYear string     `json:"academic_year"`
	TeacherId    uuid.UUID  `json:"teacher_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type CreateStudentRequest struct {
	Name    string    `json:"name" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
	ClassId uuid.UUID `json:"class_id" validate:"required"`
}

type UpdateStudentRequest struct {
	Id      uuid.UUID
	Name    string    `json:"name" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
	ClassId uuid.UUID `json:"class_id" validate:"required"`
}

type ShowStudentResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	ClassId   uuid.UUID  `json:"class_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateTermRequest struct {
	TermName  string    `json:"term_name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type UpdateTermRequest struct {
	Id        uuid.UUID
	TermName  string    `json:"term_name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type ShowTermResponse struct {
	Id        uuid.UUID  `json:"id"`
	TermName  string     `json:"term_name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateSubjectRequest struct {
	SubjectName string    `json:"subject_name" validate:"required"`
	SubjectCode string    `json:"subject_code" validate:"required"`
	TeacherId   uuid.UUID `json:"teacher_id" validate:"required"`
	ClassId     uuid.UUID `json:"class_id" validate:"required"`
}

type UpdateSubjectRequest struct {
	Id          uuid.UUID
	SubjectName string    `json:"subject_name" validate:"required"`
	SubjectCode string    `json:"subject_code" validate:"required"`
	TeacherId   uuid.UUID `json:"teacher_id" validate:"required"`
	ClassId     uuid.UUID `json:"class_id" validate:"required"`
}

type ShowSubjectResponse struct {
	Id          uuid.UUID  `json:"id"`
	SubjectName string     `json:"subject_name"`
	SubjectCode string     `json:"subject_code"`
	TeacherId   uuid.UUID  `json:"teacher_id"`
	ClassId     uuid.UUID  `json:"class_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateFolderRequest struct {
	FolderName string    `json:"folder_name" validate:"required"`
	TeacherId  uuid.UUID `json:"teacher_id" validate:"required"`
	SubjectId  uuid.UUID `json:"subject_id" validate:"required"`
}

type UpdateFolderRequest struct {
	Id         uuid.UUID
	FolderName string    `json:"folder_name" validate:"required"`
	TeacherId  uuid.UUID `json:"teacher_id" validate:"required"`
	SubjectId  uuid.UUID `json:"subject_id" validate:"required"`
}

type ShowFolderResponse struct {
	Id         uuid.UUID  `json:"id"`
	FolderName string     `json:"folder_name"`
	TeacherId  uuid.UUID  `json:"teacher_id"`
	SubjectId  uuid.UUID  `json:"subject_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
