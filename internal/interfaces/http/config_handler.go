package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/configstore"
)

// ConfigHandler endpoints das preferências de visibilidade de gráficos.
type ConfigHandler struct {
	store *configstore.FileStore
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(store *configstore.FileStore) *ConfigHandler {
	return &ConfigHandler{store: store}
}

// Graficos configuração corrente (padrões quando o arquivo não existe).
// GET /api/config/graficos
func (h *ConfigHandler) Graficos(c *fiber.Ctx) error {
	cfg, err := h.store.Carregar()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(cfg)
}

// SalvarGraficos persiste a configuração enviada. Chaves omitidas voltam
// aos padrões na próxima leitura.
// PUT /api/config/graficos
func (h *ConfigHandler) SalvarGraficos(c *fiber.Ctx) error {
	var cfg map[string]bool
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "corpo deve ser um objeto JSON de booleanos",
		})
	}

	if err := h.store.Salvar(cfg); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(cfg)
}
