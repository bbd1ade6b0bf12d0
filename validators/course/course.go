package courseValidator

import (
	"github.com/gofiber/fiber/v2"
)

// CourseList parses and clamps the catalog query parameters. Invalid numeric
// input falls back to the defaults instead of erroring.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category string
			Search   string
			Tags     string
			Sort     string
			Page     int
			Limit    int
		})

		reqData.Category = c.Query("category")
		reqData.Search = c.Query("search")
		reqData.Tags = c.Query("tags")
		reqData.Sort = c.Query("sort", "latest")

		// Whitelist the sort key; anything else means latest
		switch reqData.Sort {
		case "latest", "popular", "rating", "price_low", "price_high":
		default:
			reqData.Sort = "latest"
		}

		// page >= 1, limit in [1, 50]
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		limit := c.QueryInt("limit", 10)
		if limit < 1 {
			limit = 1
		}
		if limit > 50 {
			limit = 50
		}
		reqData.Page = page
		reqData.Limit = limit

		c.Locals("courseQuery", reqData)
		return c.Next()
	}
}
