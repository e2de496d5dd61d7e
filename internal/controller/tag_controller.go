package controller

import (
	"github.com/gofiber/fiber/v2"

	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/service"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{
		tagService: tagService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	r.Get("/tags", c.List)
}

func (c *tagController) List(ctx *fiber.Ctx) error {
	res, err := c.tagService.List(ctx.Context(), locale.FromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
