package mapper

import (
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/model"
)

// OrgMapper covers the organizational entities (teachers, classes, students,
// terms, subjects, folders). They map field for field.
type OrgMapper struct{}

func NewOrgMapper() *OrgMapper {
	return &OrgMapper{}
}

func (m *OrgMapper) TeacherToEntity(e *model.Teacher) *entity.Teacher {
	if e == nil {
		return nil
	}
	return &entity.Teacher{
		Id:        e.Id,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) TeacherToModel(e *entity.Teacher) *model.Teacher {
	if e == nil {
		return nil
	}
	return &model.Teacher{
		Id:        e.Id,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) ClassToEntity(e *model.Class) *entity.Class {
	if e == nil {
		return nil
	}
	return &entity.Class{
		Id:           e.Id,
		ClassName:    e.ClassName,
		AcademicYear: e.AcademicYear,
		TeacherId:    e.TeacherId,
		Teacher:      m.TeacherToEntity(e.Teacher),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m *OrgMapper) ClassToModel(e *entity.Class) *model.Class {
	if e == nil {
		return nil
	}
	return &model.Class{
		Id:           e.Id,
		ClassName:    e.ClassName,
		AcademicYear: e.AcademicYear,
		TeacherId:    e.TeacherId,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m *OrgMapper) StudentToEntity(e *model.Student) *entity.Student {
	if e == nil {
		return nil
	}
	return &entity.Student{
		Id:        e.Id,
		Name:      e.Name,
		Email:     e.Email,
		ClassId:   e.ClassId,
		Class:     m.ClassToEntity(e.Class),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) StudentToModel(e *entity.Student) *model.Student {
	if e == nil {
		return nil
	}
	return &model.Student{
		Id:        e.Id,
		Name:      e.Name,
		Email:     e.Email,
		ClassId:   e.ClassId,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) TermToEntity(e *model.Term) *entity.Term {
	if e == nil {
		return nil
	}
	return &entity.Term{
		Id:        e.Id,
		TermName:  e.TermName,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) TermToModel(e *entity.Term) *model.Term {
	if e == nil {
		return nil
	}
	return &model.Term{
		Id:        e.Id,
		TermName:  e.TermName,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *OrgMapper) SubjectToEntity(e *model.Subject) *entity.Subject {
	if e == nil {
		return nil
	}
	return &entity.Subject{
		Id:          e.Id,
		SubjectName: e.SubjectName,
		SubjectCode: e.SubjectCode,
		TeacherId:   e.TeacherId,
		ClassId:     e.ClassId,
		Teacher:     m.TeacherToEntity(e.Teacher),
		Class:       m.ClassToEntity(e.Class),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *OrgMapper) SubjectToModel(e *entity.Subject) *model.Subject {
	if e == nil {
		return nil
	}
	return &model.Subject{
		Id:          e.Id,
		SubjectName: e.SubjectName,
		SubjectCode: e.SubjectCode,
		TeacherId:   e.TeacherId,
		ClassId:     e.ClassId,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *OrgMapper) FolderToEntity(e *model.Folder) *entity.Folder {
	if e == nil {
		return nil
	}
	return &entity.Folder{
		Id:         e.Id,
		FolderName: e.FolderName,
		TeacherId:  e.TeacherId,
		SubjectId:  e.SubjectId,
		Teacher:    m.TeacherToEntity(e.Teacher),
		Subject:    m.SubjectToEntity(e.Subject),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *OrgMapper) FolderToModel(e *entity.Folder) *model.Folder {
	if e == nil {
		return nil
	}
	return &model.Folder{
		Id:         e.Id,
		FolderName: e.FolderName,
		TeacherId:  e.TeacherId,
		SubjectId:  e.SubjectId,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
