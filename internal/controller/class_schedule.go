package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/service"
)

type ClassScheduleHandler struct {
	schedule *service.ScheduleService
}

func NewClassScheduleHandler(schedule *service.ScheduleService) *ClassScheduleHandler {
	return &ClassScheduleHandler{schedule: schedule}
}

// List returns schedule entries for a teacher or a class.
func (h *ClassScheduleHandler) List(c *fiber.Ctx) error {
	if teacherParam := c.Query("teacher_id"); teacherParam != "" {
		teacherID, err := uuid.Parse(teacherParam)
		if err != nil {
			return model.Validationf("malformed teacher_id")
		}
		entries, err := h.schedule.ListByTeacher(c.Context(), teacherID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"entries": entries})
	}

	if classParam := c.Query("class_id"); classParam != "" {
		classID, err := uuid.Parse(classParam)
		if err != nil {
			return model.Validationf("malformed class_id")
		}
		entries, err := h.schedule.ListByClass(c.Context(), classID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"entries": entries})
	}

	return model.Validationf("teacher_id or class_id query parameter is required")
}

// Create assigns a teacher to a class for a weekly slot.
func (h *ClassScheduleHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}

	entry, err := entryFromBody(c)
	if err != nil {
		return err
	}

	if err := h.schedule.Assign(c.Context(), actor, entry); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Update reassigns an existing schedule entry.
func (h *ClassScheduleHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	entry, err := entryFromBody(c)
	if err != nil {
		return err
	}
	entry.ID = id

	if err := h.schedule.Reassign(c.Context(), actor, entry); err != nil {
		return err
	}

	return c.JSON(entry)
}

// Delete removes a schedule entry.
func (h *ClassScheduleHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.schedule.Remove(c.Context(), actor, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func entryFromBody(c *fiber.Ctx) (*model.ClassScheduleEntry, error) {
	var req classScheduleRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}

	classID, _ := uuid.Parse(req.ClassID)
	subjectID, _ := uuid.Parse(req.SubjectID)
	teacherID, _ := uuid.Parse(req.TeacherID)
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	return &model.ClassScheduleEntry{
		ClassID:   classID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		DayOfWeek: req.DayOfWeek,
		Start:     start,
		End:       end,
	}, nil
}
