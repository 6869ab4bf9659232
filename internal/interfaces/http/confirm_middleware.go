package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/user-directory/internal/application/ports"
)

// LocalConfirmer key de c.Locals donde queda la capacidad de confirmación.
const LocalConfirmer = "confirmer"

// ConfirmHeader cabecera con la respuesta del cliente a la confirmación.
const ConfirmHeader = "X-Confirm"

// RequireConfirmation deja en c.Locals un ports.Confirmer que responde con lo
// que el cliente envió en la petición:
//   - ?confirm=true  → confirmado
//   - X-Confirm: yes → confirmado
//   - cualquier otro caso → cancelado (sin mutación)
func RequireConfirmation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		answer := requestConfirmed(c)
		c.Locals(LocalConfirmer, ports.ConfirmFunc(func(context.Context, string) (bool, error) {
			return answer, nil
		}))
		return c.Next()
	}
}

// GetConfirmer devuelve el Confirmer del contexto (después de RequireConfirmation).
func GetConfirmer(c *fiber.Ctx) ports.Confirmer {
	v := c.Locals(LocalConfirmer)
	if v == nil {
		return nil
	}
	cf, _ := v.(ports.Confirmer)
	return cf
}

func requestConfirmed(c *fiber.Ctx) bool {
	if c.QueryBool("confirm", false) {
		return true
	}
	h := strings.TrimSpace(c.Get(ConfirmHeader))
	return strings.EqualFold(h, "yes") || strings.EqualFold(h, "true")
}
