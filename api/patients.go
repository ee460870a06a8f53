package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carewell-org/hospital/errors"
	"github.com/carewell-org/hospital/patients"
)

// (POST /patients)
func (h *Handler) CreatePatient(c echo.Context) error {
	dto := Patient{}
	if err := c.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	created, err := h.patients.Create(c.Request().Context(), NewPatient(dto))
	if err != nil {
		if stderrors.Is(err, patients.ErrDuplicate) {
			return errors.Duplicate
		}
		return err
	}

	return c.JSON(http.StatusOK, Created{Id: created.Id.Hex(), Status: "ok"})
}

// (GET /patients)
func (h *Handler) ListPatients(c echo.Context) error {
	list, err := h.patients.List(c.Request().Context(), &patients.Filter{}, pagination(c), sorts(c, patientSortAttributes))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewPatientsDto(list))
}

// (GET /patients/{id})
func (h *Handler) GetPatient(c echo.Context) error {
	patient, err := h.patients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if stderrors.Is(err, patients.ErrNotFound) {
			return errors.NotFound
		}
		return err
	}

	return c.JSON(http.StatusOK, NewPatientDto(patient))
}

var patientSortAttributes = map[string]string{
	"created_time": "createdTime",
	"last_name":    "lastName",
}
