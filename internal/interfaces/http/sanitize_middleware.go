package http

import (
	"bytes"
	"encoding/json"
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
)

// maxSanitizePasses tope de pasadas para texto codificado varias veces.
const maxSanitizePasses = 8

// rawFields campos JSON que no se sanitizan (se comparan o se hashean tal cual).
var rawFields = map[string]bool{"password": true}

// SanitizeInput quita el marcado HTML de todos los strings de los cuerpos JSON (POST, PUT, PATCH).
func SanitizeInput() fiber.Handler {
	policy := bluemonday.StrictPolicy()
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		default:
			return c.Next()
		}
		if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) || len(c.Body()) == 0 {
			return c.Next()
		}

		dec := json.NewDecoder(bytes.NewReader(c.Body()))
		dec.UseNumber()
		var body any
		if err := dec.Decode(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON mal formado"})
		}
		clean, err := json.Marshal(sanitizeValue(policy, "", body))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON mal formado"})
		}
		c.Request().SetBody(clean)
		return c.Next()
	}
}

func sanitizeValue(policy *bluemonday.Policy, key string, v any) any {
	switch t := v.(type) {
	case string:
		if rawFields[key] {
			return t
		}
		return cleanText(policy, t)
	case map[string]any:
		for k, val := range t {
			t[k] = sanitizeValue(policy, k, val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = sanitizeValue(policy, key, val)
		}
		return t
	default:
		return v
	}
}

// cleanText sanitiza y decodifica las entidades hasta que el resultado no cambie, de modo que
// un "&lt;script&gt;" no reaparezca como etiqueta al decodificarlo. Si no converge se
// devuelve la salida escapada de bluemonday.
func cleanText(policy *bluemonday.Policy, s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		out := html.UnescapeString(policy.Sanitize(s))
		if out == s {
			return out
		}
		s = out
	}
	return policy.Sanitize(s)
}
