package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/errors"
)

// (POST /appointments)
func (h *Handler) CreateAppointment(c echo.Context) error {
	dto := Appointment{}
	if err := c.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	created, err := h.appointments.Create(c.Request().Context(), NewAppointment(dto))
	if err != nil {
		if stderrors.Is(err, appointments.ErrInvalidDate) || stderrors.Is(err, appointments.ErrInvalidStatus) {
			return errors.HttpError{Code: http.StatusBadRequest, Err: err}
		}
		return err
	}

	return c.JSON(http.StatusOK, Created{Id: created.Id.Hex(), Status: "ok"})
}

// (GET /appointments)
func (h *Handler) ListAppointments(c echo.Context) error {
	filter := &appointments.Filter{}
	if raw := c.QueryParam("date"); raw != "" {
		filter.Date = &raw
	}
	if raw := c.QueryParam("status"); raw != "" {
		filter.Status = &raw
	}

	list, err := h.appointments.List(c.Request().Context(), filter, pagination(c), sorts(c, appointmentSortAttributes))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewAppointmentsDto(list))
}

// (GET /appointments/{id})
func (h *Handler) GetAppointment(c echo.Context) error {
	appointment, err := h.appointments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if stderrors.Is(err, appointments.ErrNotFound) {
			return errors.NotFound
		}
		return err
	}

	return c.JSON(http.StatusOK, NewAppointmentDto(appointment))
}

var appointmentSortAttributes = map[string]string{
	"created_time": "createdTime",
	"date":         "date",
	"status":       "status",
}
