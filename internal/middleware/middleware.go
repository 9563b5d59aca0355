package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

func NewMiddleware(allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{allowOrigins: allowOrigins}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}
