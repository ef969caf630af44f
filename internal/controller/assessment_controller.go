package controller

import (
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/pkg/serverutils"
	"ai-grading-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
}

type assessmentController struct {
	gradingService    service.IGradingService
	assessmentService service.IAssessmentService
}

func NewAssessmentController(gradingService service.IGradingService, assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		gradingService:    gradingService,
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Post("analyze", c.Analyze)
	h.Post("compare", c.Compare)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id/approve", c.Approve)
}

func (c *assessmentController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.gradingService.AnalyzeStudentAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze student answer", res))
}

func (c *assessmentController) Compare(ctx *fiber.Ctx) error {
	var req dto.CompareAnswersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.gradingService.CompareAnswers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success compare answers", res))
}

func (c *assessmentController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.assessmentService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show assessment", res))
}

func (c *assessmentController) List(ctx *fiber.Ctx) error {
	var req dto.ListAssessmentsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.assessmentService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list assessments", res))
}

func (c *assessmentController) Approve(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.ApproveAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assessmentService.Approve(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success approve assessment", res))
}
