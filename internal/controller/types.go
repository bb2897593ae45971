package controller

import (
	"github.com/go-playground/validator/v10"

	"github.com/tutorlane/tutorlane/internal/model"
)

var validate = validator.New()

type createRuleRequest struct {
	IsRecurring  bool    `json:"is_recurring"`
	DayOfWeek    *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	SpecificDate *string `json:"specific_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	Notes        string  `json:"notes"`
}

type bookAppointmentRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	StudentID string `json:"student_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	Date      string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Notes     string `json:"notes"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type classScheduleRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type slotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

func toSlotResponses(slots []model.BookableSlot) []slotResponse {
	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotResponse{
			Date:      s.Date.Format("2006-01-02"),
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
			Label:     s.Label(),
		})
	}
	return out
}
