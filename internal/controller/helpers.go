package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
)

// Identity headers set by the fronting auth layer. The engine itself never
// resolves sessions; every call receives the acting party explicitly.
const (
	headerActorID   = "X-Actor-ID"
	headerActorRole = "X-Actor-Role"
)

func actorFromRequest(c *fiber.Ctx) (model.Actor, error) {
	id, err := uuid.Parse(c.Get(headerActorID))
	if err != nil {
		return model.Actor{}, model.Validationf("missing or malformed %s header", headerActorID)
	}
	role := model.Role(c.Get(headerActorRole))
	if !role.Valid() {
		return model.Actor{}, model.Validationf("missing or malformed %s header", headerActorRole)
	}
	return model.Actor{ID: id, Role: role}, nil
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, model.Validationf("malformed %s", name)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, model.Validationf("malformed date %q, want YYYY-MM-DD", s)
	}
	return date, nil
}

func parseMonth(s string) (int, time.Month, error) {
	month, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, model.Validationf("malformed month %q, want YYYY-MM", s)
	}
	return month.Year(), month.Month(), nil
}

func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return model.Validationf("malformed request body")
	}
	if err := validate.Struct(dst); err != nil {
		return model.Validationf("invalid request: %v", err)
	}
	return nil
}

func parseWindow(startTime, endTime string) (model.TimeOfDay, model.TimeOfDay, error) {
	start, err := model.ParseTimeOfDay(startTime)
	if err != nil {
		return 0, 0, model.Validationf("malformed start_time %q, want HH:MM", startTime)
	}
	end, err := model.ParseTimeOfDay(endTime)
	if err != nil {
		return 0, 0, model.Validationf("malformed end_time %q, want HH:MM", endTime)
	}
	return start, end, nil
}
