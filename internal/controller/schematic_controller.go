package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"literinth-be/internal/dto"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/service"
)

type ISchematicController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Like(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type schematicController struct {
	schematicService service.ISchematicService
}

func NewSchematicController(schematicService service.ISchematicService) ISchematicController {
	return &schematicController{
		schematicService: schematicService,
	}
}

func (c *schematicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/schematics")
	h.Get("/", c.List)
	h.Get("/:id", serverutils.OptionalJwtMiddleware, c.Get)
	h.Post("/", serverutils.JwtMiddleware, c.Create)
	h.Put("/:id", serverutils.JwtMiddleware, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, c.Delete)
	h.Post("/:id/like", serverutils.JwtMiddleware, c.Like)
	h.Post("/:id/download", c.Download)
}

func (c *schematicController) List(ctx *fiber.Ctx) error {
	req := dto.ListSchematicsRequest{
		Category:    ctx.Query("category"),
		Subcategory: ctx.Query("subcategory"),
		Tag:         ctx.Query("tag"),
		Search:      ctx.Query("search"),
		Sort:        ctx.Query("sort"),
		Page:        ctx.QueryInt("page", 1),
		PerPage:     ctx.QueryInt("perPage", 20),
	}

	res, err := c.schematicService.List(ctx.Context(), locale.FromCtx(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *schematicController) Get(ctx *fiber.Ctx) error {
	ref := ctx.Params("id")
	if ref == "" {
		return serverutils.NewInvalidArgument("Invalid id")
	}

	res, err := c.schematicService.Get(ctx.Context(), ref, locale.FromCtx(ctx), optionalUserId(ctx), isAdminRequest(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *schematicController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSchematicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.schematicService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Schematic created", res))
}

func (c *schematicController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSchematicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.schematicService.Update(ctx.Context(), userId, isAdminRequest(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Schematic updated", struct{}{}))
}

func (c *schematicController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.schematicService.Delete(ctx.Context(), userId, isAdminRequest(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Schematic deleted", struct{}{}))
}

func (c *schematicController) Like(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.schematicService.ToggleLike(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *schematicController) Download(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.schematicService.Download(ctx.Context(), id, locale.FromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewInvalidArgument("Invalid id")
	}
	return id, nil
}
