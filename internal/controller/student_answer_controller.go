package controller

import (
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/pkg/serverutils"
	"ai-grading-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudentAnswerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Process(ctx *fiber.Ctx) error
}

type studentAnswerController struct {
	studentAnswerService service.IStudentAnswerService
}

func NewStudentAnswerController(studentAnswerService service.IStudentAnswerService) IStudentAnswerController {
	return &studentAnswerController{
		studentAnswerService: studentAnswerService,
	}
}

func (c *studentAnswerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/student-answer/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/process", c.Process)
	h.Delete(":id", c.Delete)
}

func (c *studentAnswerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStudentAnswerRequest
	fileData, err := parseDocumentForm(ctx, &req)
	if err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.studentAnswerService.Create(ctx.Context(), &req, fileData)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create student answer", res))
}

func (c *studentAnswerController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateStudentAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(ctx.Params("id"))
	req.Id = id

	res, err := c.studentAnswerService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update student answer", res))
}

func (c *studentAnswerController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.studentAnswerService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show student answer", res))
}

func (c *studentAnswerController) List(ctx *fiber.Ctx) error {
	var answerKeyId *uuid.UUID
	if raw := ctx.Query("answer_key_id", ""); raw != "" {
		id, err := uuid.Parse(raw)
		if err == nil {
			answerKeyId = &id
		}
	}

	res, err := c.studentAnswerService.List(ctx.Context(), answerKeyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list student answers", res))
}

func (c *studentAnswerController) Delete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	err := c.studentAnswerService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete student answer", nil))
}

func (c *studentAnswerController) Process(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.studentAnswerService.Process(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process student answer", res))
}
