package controller

import (
	"io"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/pkg/serverutils"
	"ai-grading-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnswerKeyController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Process(ctx *fiber.Ctx) error
}

type answerKeyController struct {
	answerKeyService service.IAnswerKeyService
}

func NewAnswerKeyController(answerKeyService service.IAnswerKeyService) IAnswerKeyController {
	return &answerKeyController{
		answerKeyService: answerKeyService,
	}
}

func (c *answerKeyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/answer-key/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/process", c.Process)
	h.Delete(":id", c.Delete)
}

func (c *answerKeyController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnswerKeyRequest
	fileData, err := parseDocumentForm(ctx, &req)
	if err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.answerKeyService.Create(ctx.Context(), &req, fileData)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create answer key", res))
}

func (c *answerKeyController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateAnswerKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(ctx.Params("id"))
	req.Id = id

	res, err := c.answerKeyService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update answer key", res))
}

func (c *answerKeyController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.answerKeyService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show answer key", res))
}

func (c *answerKeyController) List(ctx *fiber.Ctx) error {
	res, err := c.answerKeyService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list answer keys", res))
}

func (c *answerKeyController) Delete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	err := c.answerKeyService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete answer key", nil))
}

func (c *answerKeyController) Process(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.answerKeyService.Process(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process answer key", res))
}

// parseDocumentForm fills a create-document request from either a JSON body or
// a multipart form. When a file part is present its bytes are returned and the
// file name / type fall back to the upload's metadata.
func parseDocumentForm(ctx *fiber.Ctx, req interface{}) ([]byte, error) {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil, ctx.BodyParser(req)
	}

	if err := ctx.BodyParser(req); err != nil {
		return nil, err
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case *dto.CreateAnswerKeyRequest:
		if r.FileName == "" {
			r.FileName = fh.Filename
		}
		if r.FileType == "" {
			r.FileType = fh.Header.Get("Content-Type")
		}
	case *dto.CreateStudentAnswerRequest:
		if r.FileName == "" {
			r.FileName = fh.Filename
		}
		if r.FileType == "" {
			r.FileType = fh.Header.Get("Content-Type")
		}
	}

	return data, nil
}
