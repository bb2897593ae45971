package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tutorlane/tutorlane/internal/service"
)

// Deps bundles the services the HTTP surface exposes.
type Deps struct {
	Availability *service.AvailabilityService
	Booking      *service.BookingService
	Schedule     *service.ScheduleService
	Catalog      *service.CatalogService
}

// Register mounts all routes under /api/v1.
func Register(app *fiber.App, deps Deps) {
	availability := NewAvailabilityHandler(deps.Availability)
	appointments := NewAppointmentHandler(deps.Booking)
	classSchedule := NewClassScheduleHandler(deps.Schedule)
	catalog := NewCatalogHandler(deps.Catalog)

	api := app.Group("/api/v1")

	api.Get("/teachers", catalog.ListTeachers)
	api.Get("/subjects", catalog.ListSubjects)
	api.Get("/classes", catalog.ListClasses)

	api.Get("/teachers/:id/availability", availability.List)
	api.Post("/teachers/:id/availability", availability.Create)
	api.Put("/availability/:id", availability.Update)
	api.Delete("/availability/:id", availability.Deactivate)
	api.Get("/teachers/:id/slots", availability.Slots)

	api.Post("/appointments", appointments.Book)
	api.Get("/appointments", appointments.List)
	api.Get("/appointments/:id", appointments.Get)
	api.Patch("/appointments/:id/status", appointments.Transition)
	api.Patch("/appointments/:id/notes", appointments.UpdateNotes)

	api.Get("/class-schedule", classSchedule.List)
	api.Post("/class-schedule", classSchedule.Create)
	api.Put("/class-schedule/:id", classSchedule.Update)
	api.Delete("/class-schedule/:id", classSchedule.Delete)
}
