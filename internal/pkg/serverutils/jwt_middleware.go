package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtSecret returns the signing key shared by every token verifier.
func JwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, NewUnauthenticated("Missing token")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, NewUnauthenticated("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewUnauthenticated("Invalid claims")
	}
	return claims, nil
}

// JwtMiddleware requires a valid bearer token and stores user_id and role
// in the request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, err := parseBearer(ctx)
	if err != nil {
		return err
	}

	ctx.Locals("user_id", claims["user_id"])
	if role, ok := claims["role"].(string); ok {
		ctx.Locals("role", role)
	}
	return ctx.Next()
}

// OptionalJwtMiddleware stores the identity when a valid token is present
// and lets anonymous requests through untouched.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	claims, err := parseBearer(ctx)
	if err == nil {
		ctx.Locals("user_id", claims["user_id"])
		if role, ok := claims["role"].(string); ok {
			ctx.Locals("role", role)
		}
	}
	return ctx.Next()
}
