package handlers

import "github.com/gofiber/fiber/v2"

// respond writes the bare {success, message} envelope shared by mutation
// results and every failure path.
func respond(c *fiber.Ctx, status int, success bool, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": success,
		"message": message,
	})
}
