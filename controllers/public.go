package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetHealth(c *fiber.Ctx) error {
	return c.Status(200).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
