package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tecnolife/dashboard-vendas/pkg/logger"
)

// RequestLogger devolve um middleware Fiber que registra cada requisição com
// método, caminho, status e duração. Respostas 5xx sobem para nível de erro.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			evt = log.Error().Err(err)
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(inicio)).
			Msg("requisição atendida")

		return err
	}
}
