package server

import "github.com/gofiber/fiber/v2"

// jsonError is the error payload returned to API callers.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONError(c *fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(jsonError{Error: message, Details: details})
}
