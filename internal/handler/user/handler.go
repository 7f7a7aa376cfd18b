package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/prescriptions-api/internal/handler"
	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/service/user"
)

type Handler struct {
	service user.Service
}

func NewHandler(service user.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/register/doctor", h.RegisterDoctor)
		users.POST("/register/patient", h.RegisterPatient)
		users.GET("/doctor/:id", h.GetDoctor)
		users.GET("/patient/:id", h.GetPatient)
	}
}

func (h *Handler) RegisterDoctor(c *gin.Context) {
	var req model.RegisterDoctorRequest
	if err := handler.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	doctor, err := h.service.RegisterDoctor(c.Request.Context(), req.ToDoctor())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, model.NewDoctorDTO(doctor))
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := handler.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	patient, err := h.service.RegisterPatient(c.Request.Context(), req.ToPatient())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, model.NewPatientDTO(patient))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, model.NewDoctorDTO(doctor))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, model.NewPatientDTO(patient))
}
