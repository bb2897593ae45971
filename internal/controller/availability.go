package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/service"
)

type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// List returns all availability rules for a teacher.
func (h *AvailabilityHandler) List(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rules, err := h.availability.ListRules(c.Context(), teacherID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"rules": rules})
}

// Create adds an availability rule for a teacher.
func (h *AvailabilityHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	teacherID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createRuleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	rule, err := ruleFromRequest(teacherID, req)
	if err != nil {
		return err
	}

	if err := h.availability.CreateRule(c.Context(), actor, rule); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(rule)
}

// Update rewrites an availability rule.
func (h *AvailabilityHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	ruleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createRuleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	rule, err := ruleFromRequest(uuid.Nil, req)
	if err != nil {
		return err
	}
	rule.ID = ruleID
	rule.IsActive = true

	if err := h.availability.UpdateRule(c.Context(), actor, rule); err != nil {
		return err
	}

	return c.JSON(rule)
}

// Deactivate soft-deletes an availability rule.
func (h *AvailabilityHandler) Deactivate(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	ruleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.availability.DeactivateRule(c.Context(), actor, ruleID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Slots serves the booking calendar. With ?month=YYYY-MM it returns the
// dates that still have at least one bookable hour; with ?date=YYYY-MM-DD
// it returns the ordered hour slots for that date.
func (h *AvailabilityHandler) Slots(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	today := time.Now()

	if monthParam := c.Query("month"); monthParam != "" {
		year, month, err := parseMonth(monthParam)
		if err != nil {
			return err
		}
		dates, err := h.availability.AvailableDates(c.Context(), teacherID, year, month, today)
		if err != nil {
			return err
		}
		if dates == nil {
			dates = []string{}
		}
		return c.JSON(fiber.Map{"dates": dates})
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		return model.Validationf("either month or date query parameter is required")
	}
	date, err := parseDate(dateParam)
	if err != nil {
		return err
	}

	slots, err := h.availability.AvailableSlots(c.Context(), teacherID, date, today)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"slots": toSlotResponses(slots)})
}

func ruleFromRequest(teacherID uuid.UUID, req createRuleRequest) (*model.AvailabilityRule, error) {
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	rule := &model.AvailabilityRule{
		TeacherID:   teacherID,
		IsRecurring: req.IsRecurring,
		DayOfWeek:   req.DayOfWeek,
		Start:       start,
		End:         end,
		Notes:       req.Notes,
	}
	if req.SpecificDate != nil {
		date, err := parseDate(*req.SpecificDate)
		if err != nil {
			return nil, err
		}
		rule.SpecificDate = &date
	}
	return rule, nil
}
