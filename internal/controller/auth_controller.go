package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"literinth-be/internal/dto"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
	h.Get("/me", serverutils.JwtMiddleware, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Account created", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidArgument("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logged in", res))
}

// Logout is stateless: tokens simply expire, the endpoint exists so
// clients have a uniform call to clear their session against.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Logged out", struct{}{}))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.authService.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

// currentUserId reads the authenticated user from the request locals.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, serverutils.NewUnauthenticated("Missing identity")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.NewUnauthenticated("Invalid identity")
	}
	return userId, nil
}

// optionalUserId returns nil when the request is anonymous.
func optionalUserId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}

func isAdminRequest(ctx *fiber.Ctx) bool {
	role, _ := ctx.Locals("role").(string)
	return role == "admin"
}
