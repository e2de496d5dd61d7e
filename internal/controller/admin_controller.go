package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"literinth-be/internal/dto"
	"literinth-be/internal/handler"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService service.IAdminService
	feedHandler  *handler.FeedHandler
}

func NewAdminController(adminService service.IAdminService, feedHandler *handler.FeedHandler) IAdminController {
	return &adminController{
		adminService: adminService,
		feedHandler:  feedHandler,
	}
}

func (c *adminController) adminMiddleware(ctx *fiber.Ctx) error {
	if !isAdminRequest(ctx) {
		return serverutils.NewPermissionDenied("Admin access required")
	}
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	// The feed handler authenticates the websocket handshake itself:
	// browsers cannot set the Authorization header on upgrades.
	h.Get("/feed/ws", c.feedHandler.ServeWs)

	h.Use(serverutils.JwtMiddleware, c.adminMiddleware)

	h.Get("/categories", c.CategoryTree)
	h.Post("/categories", c.CreateCategory)
	h.Put("/categories/:id", c.UpdateCategory)
	h.Delete("/categories/:id", c.DeleteCategory)
	h.Patch("/categories/:id/visibility", c.SetCategoryVisibility)
	h.Patch("/categories/:id/translations", c.UpsertCategoryTranslations)

	h.Post("/subcategories", c.CreateSubcategory)
	h.Delete("/subcategories/:id", c.DeleteSubcategory)
	h.Patch("/subcategories/:id/visibility", c.SetSubcategoryVisibility)
	h.Patch("/subcategories/:id/translations", c.UpsertSubcategoryTranslations)

	h.Get("/schematics", c.ListSchematics)
	h.Patch("/schematics/:id/visibility", c.SetSchematicVisibility)
	h.Patch("/schematics/:id/translations", c.UpsertSchematicTranslations)

	h.Get("/stats", c.Stats)
	h.Get("/logs", c.Logs)
	h.Get("/logs/:id", c.Log)
	h.Get("/app-logs", c.AppLogs)
	h.Get("/app-logs/:id", c.AppLog)
}

func (c *adminController) CategoryTree(ctx *fiber.Ctx) error {
	res, err := c.adminService.CategoryTree(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category tree", res))
}

func (c *adminController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *adminController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpdateCategory(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", struct{}{}))
}

func (c *adminController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.adminService.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category deleted", struct{}{}))
}

func (c *adminController) SetCategoryVisibility(ctx *fiber.Ctx) error {
	return c.setVisibility(ctx, c.adminService.SetCategoryVisibility)
}

func (c *adminController) UpsertCategoryTranslations(ctx *fiber.Ctx) error {
	return c.upsertTranslations(ctx, c.adminService.UpsertCategoryTranslations)
}

func (c *adminController) UpsertSubcategoryTranslations(ctx *fiber.Ctx) error {
	return c.upsertTranslations(ctx, c.adminService.UpsertSubcategoryTranslations)
}

func (c *adminController) upsertTranslations(ctx *fiber.Ctx, apply func(context.Context, *dto.UpsertTranslationsRequest) error) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertTranslationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := apply(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Translations updated", struct{}{}))
}

func (c *adminController) ListSchematics(ctx *fiber.Ctx) error {
	req := dto.AdminListSchematicsRequest{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Page:     ctx.QueryInt("page", 1),
		PerPage:  ctx.QueryInt("perPage", 50),
	}

	res, err := c.adminService.ListSchematics(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) UpsertSchematicTranslations(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertSchematicTranslationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpsertSchematicTranslations(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Translations updated", struct{}{}))
}

func (c *adminController) CreateSubcategory(ctx *fiber.Ctx) error {
	var req dto.CreateSubcategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateSubcategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subcategory created", res))
}

func (c *adminController) DeleteSubcategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.adminService.DeleteSubcategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subcategory deleted", struct{}{}))
}

func (c *adminController) SetSubcategoryVisibility(ctx *fiber.Ctx) error {
	return c.setVisibility(ctx, c.adminService.SetSubcategoryVisibility)
}

func (c *adminController) SetSchematicVisibility(ctx *fiber.Ctx) error {
	return c.setVisibility(ctx, c.adminService.SetSchematicVisibility)
}

func (c *adminController) setVisibility(ctx *fiber.Ctx, apply func(context.Context, *dto.UpdateVisibilityRequest) error) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateVisibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}
	req.Id = id

	if err := apply(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visibility updated", struct{}{}))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.adminService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Stats", res))
}

func (c *adminController) Log(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.Log(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log entry", res))
}

// AppLogs serves raw process log lines; /logs serves the database
// audit trail.
func (c *adminController) AppLogs(ctx *fiber.Ctx) error {
	res, err := c.adminService.AppLogs(
		ctx.Query("level"),
		ctx.QueryInt("page", 1),
		ctx.QueryInt("perPage", 50),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application logs", res))
}

func (c *adminController) AppLog(ctx *fiber.Ctx) error {
	res, err := c.adminService.AppLog(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log entry", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	res, err := c.adminService.Logs(
		ctx.Context(),
		ctx.Query("level"),
		ctx.Query("module"),
		ctx.QueryInt("page", 1),
		ctx.QueryInt("perPage", 50),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
