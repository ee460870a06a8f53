package api

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/patients"
	"github.com/carewell-org/hospital/stats"
	"github.com/carewell-org/hospital/store"
)

type Handler struct {
	patients     patients.Service
	doctors      doctors.Service
	appointments appointments.Service
	stats        stats.Reporter
	db           *mongo.Database
	storeConfig  *store.Config
}

type Params struct {
	fx.In

	Patients     patients.Service
	Doctors      doctors.Service
	Appointments appointments.Service
	Stats        stats.Reporter
	Db           *mongo.Database
	StoreConfig  *store.Config
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients:     p.Patients,
		doctors:      p.Doctors,
		appointments: p.Appointments,
		stats:        p.Stats,
		db:           p.Db,
		storeConfig:  p.StoreConfig,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.GET("/", h.GetRoot)
	e.GET("/test", h.TestDatabase)
	e.GET("/stats", h.GetLiveStats)
	e.GET("/patients", h.ListPatients)
	e.POST("/patients", h.CreatePatient)
	e.GET("/patients/:id", h.GetPatient)
	e.GET("/doctors", h.ListDoctors)
	e.POST("/doctors", h.CreateDoctor)
	e.GET("/doctors/:id", h.GetDoctor)
	e.GET("/appointments", h.ListAppointments)
	e.POST("/appointments", h.CreateAppointment)
	e.GET("/appointments/:id", h.GetAppointment)
}

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

func pagination(c echo.Context) store.Pagination {
	page := store.DefaultPagination().WithLimit(defaultListLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			if limit > maxListLimit {
				limit = maxListLimit
			}
			page = page.WithLimit(limit)
		}
	}
	return page
}

// sorts maps the `sort` query parameter to a store sort. A leading `-` selects
// descending order. Attributes not in the allow list fall through to the
// store's default ordering.
func sorts(c echo.Context, attributes map[string]string) []*store.Sort {
	raw := c.QueryParam("sort")
	ascending := true
	if strings.HasPrefix(raw, "-") {
		ascending = false
		raw = strings.TrimPrefix(raw, "-")
	}

	attribute, ok := attributes[raw]
	if !ok {
		return nil
	}
	return []*store.Sort{{Attribute: attribute, Ascending: ascending}}
}
