package controller

import (
	"github.com/gofiber/fiber/v2"

	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/service"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
}

func NewCategoryController(categoryService service.ICategoryService) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/categories")
	h.Get("/", c.List)
	h.Get("/:slug", c.GetBySlug)
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	res, err := c.categoryService.List(ctx.Context(), locale.FromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *categoryController) GetBySlug(ctx *fiber.Ctx) error {
	res, err := c.categoryService.GetBySlug(ctx.Context(), ctx.Params("slug"), locale.FromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
