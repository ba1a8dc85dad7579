package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDateQuery lee un query param de fecha calendario YYYY-MM-DD.
// Ausente devuelve nil; malformado devuelve error.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: se esperaba YYYY-MM-DD", name)
	}
	return &t, nil
}
