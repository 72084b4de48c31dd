package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Paging struct {
	Skip int
	Take int
}

// ResolvePaging reads ?start= & ?take= and normalizes them.
// maxTake 0 means no upper bound.
func ResolvePaging(c *fiber.Ctx, defaultTake, maxTake int) Paging {
	skip, _ := strconv.Atoi(strings.TrimSpace(c.Query("start", "0")))
	if skip < 0 {
		skip = 0
	}

	take, err := strconv.Atoi(strings.TrimSpace(c.Query("take")))
	if err != nil || take <= 0 {
		take = defaultTake
	}
	if maxTake > 0 && take > maxTake {
		take = maxTake
	}
	return Paging{Skip: skip, Take: take}
}
