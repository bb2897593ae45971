package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tutorlane/tutorlane/internal/model"
	"github.com/tutorlane/tutorlane/internal/service"
)

type AppointmentHandler struct {
	booking *service.BookingService
}

func NewAppointmentHandler(booking *service.BookingService) *AppointmentHandler {
	return &AppointmentHandler{booking: booking}
}

// Book creates an appointment from a slot the caller selected in the
// calendar view.
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}

	req, err := bookingRequestFromBody(c)
	if err != nil {
		return err
	}

	apt, err := h.booking.Book(c.Context(), actor, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(apt)
}

// List returns appointments filtered by teacher_id or student_id, and
// optionally by date (teacher filter only).
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	if teacherParam := c.Query("teacher_id"); teacherParam != "" {
		teacherID, err := uuid.Parse(teacherParam)
		if err != nil {
			return model.Validationf("malformed teacher_id")
		}
		if dateParam := c.Query("date"); dateParam != "" {
			date, err := parseDate(dateParam)
			if err != nil {
				return err
			}
			appointments, err := h.booking.ListByTeacherDate(c.Context(), teacherID, date)
			if err != nil {
				return err
			}
			return c.JSON(fiber.Map{"appointments": appointments})
		}
		appointments, err := h.booking.ListByTeacher(c.Context(), teacherID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"appointments": appointments})
	}

	if studentParam := c.Query("student_id"); studentParam != "" {
		studentID, err := uuid.Parse(studentParam)
		if err != nil {
			return model.Validationf("malformed student_id")
		}
		appointments, err := h.booking.ListByStudent(c.Context(), studentID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"appointments": appointments})
	}

	return model.Validationf("teacher_id or student_id query parameter is required")
}

// Get returns one appointment.
func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	apt, err := h.booking.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(apt)
}

// Transition moves an appointment through its status state machine.
func (h *AppointmentHandler) Transition(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	apt, err := h.booking.Transition(c.Context(), actor, id, model.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(apt)
}

// UpdateNotes replaces an appointment's notes.
func (h *AppointmentHandler) UpdateNotes(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req notesRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.booking.UpdateNotes(c.Context(), actor, id, req.Notes); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func bookingRequestFromBody(c *fiber.Ctx) (service.BookingRequest, error) {
	var req bookAppointmentRequest
	if err := parseBody(c, &req); err != nil {
		return service.BookingRequest{}, err
	}

	teacherID, _ := uuid.Parse(req.TeacherID)
	studentID, _ := uuid.Parse(req.StudentID)
	subjectID, _ := uuid.Parse(req.SubjectID)
	date, err := parseDate(req.Date)
	if err != nil {
		return service.BookingRequest{}, err
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return service.BookingRequest{}, err
	}

	return service.BookingRequest{
		TeacherID: teacherID,
		StudentID: studentID,
		SubjectID: subjectID,
		Date:      date,
		Start:     start,
		End:       end,
		Notes:     req.Notes,
	}, nil
}
