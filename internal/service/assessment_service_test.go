package service

import (
	"context"
	"testing"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveAssessment(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.assessments.assessments = []*entity.Assessment{{Id: id, Score: 8, MaxScore: 10}}

	svc := NewAssessmentService(&fakeUowFactory{uow: uow})

	approver := uuid.New()
	res, err := svc.Approve(context.Background(), &dto.ApproveAssessmentRequest{Id: id, ApprovedBy: approver})
	require.NoError(t, err)

	assert.True(t, res.IsApproved)
	require.NotNil(t, res.ApprovedBy)
	assert.Equal(t, approver, *res.ApprovedBy)
}

func TestApproveAssessmentNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAssessmentService(&fakeUowFactory{uow: uow})

	_, err := svc.Approve(context.Background(), &dto.ApproveAssessmentRequest{Id: uuid.New(), ApprovedBy: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestShowAssessmentNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAssessmentService(&fakeUowFactory{uow: uow})

	_, err := svc.Show(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
