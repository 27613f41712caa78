package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// pagination reads skip/limit query params with the store's defaults and
// clamps limit so a single request cannot page the whole collection.
func pagination(c *fiber.Ctx) (skip, limit int64) {
	skip = int64(c.QueryInt("skip", 0))
	limit = int64(c.QueryInt("limit", 10))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return skip, limit
}
