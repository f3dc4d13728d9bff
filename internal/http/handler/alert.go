package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Alert writes the X-<app>-alert and X-<app>-params response headers that
// tell clients which entity changed and how.
type Alert struct {
	App string
}

func (a Alert) send(c *fiber.Ctx, entity, action string, id int64) {
	if a.App == "" {
		return
	}
	c.Set("X-"+a.App+"-alert", a.App+"."+entity+"."+action)
	c.Set("X-"+a.App+"-params", strconv.FormatInt(id, 10))
}

func (a Alert) created(c *fiber.Ctx, entity string, id int64) { a.send(c, entity, "created", id) }
func (a Alert) updated(c *fiber.Ctx, entity string, id int64) { a.send(c, entity, "updated", id) }
func (a Alert) deleted(c *fiber.Ctx, entity string, id int64) { a.send(c, entity, "deleted", id) }
