package api

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/errors"
)

// (POST /doctors)
func (h *Handler) CreateDoctor(c echo.Context) error {
	dto := Doctor{}
	if err := c.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	created, err := h.doctors.Create(c.Request().Context(), NewDoctor(dto))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Created{Id: created.Id.Hex(), Status: "ok"})
}

// (GET /doctors)
func (h *Handler) ListDoctors(c echo.Context) error {
	filter := &doctors.Filter{}
	if raw := c.QueryParam("on_duty"); raw != "" {
		if onDuty, err := strconv.ParseBool(raw); err == nil {
			filter.OnDuty = &onDuty
		}
	}

	list, err := h.doctors.List(c.Request().Context(), filter, pagination(c), sorts(c, doctorSortAttributes))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewDoctorsDto(list))
}

// (GET /doctors/{id})
func (h *Handler) GetDoctor(c echo.Context) error {
	doctor, err := h.doctors.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if stderrors.Is(err, doctors.ErrNotFound) {
			return errors.NotFound
		}
		return err
	}

	return c.JSON(http.StatusOK, NewDoctorDto(doctor))
}

var doctorSortAttributes = map[string]string{
	"created_time": "createdTime",
	"last_name":    "lastName",
	"department":   "department",
}
