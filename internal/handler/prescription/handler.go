package prescription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/prescriptions-api/internal/handler"
	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/service/prescription"
)

type Handler struct {
	service prescription.Service
}

func NewHandler(service prescription.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	prescriptions := r.Group("/prescriptions")
	{
		prescriptions.POST("/create", h.CreatePrescription)
		prescriptions.GET("/doctor/:doctorId", h.ListByDoctor)
		prescriptions.GET("/patient/:patientId", h.ListByPatient)
	}
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if err := handler.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.service.CreatePrescription(c.Request.Context(), req.ToPrescription())
	if err != nil {
		_ = c.Error(err)
		return
	}

	dto, err := model.NewPrescriptionDTO(created)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

func (h *Handler) ListByDoctor(c *gin.Context) {
	doctorID, err := handler.ParseID(c, "doctorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	prescriptions, err := h.service.GetPrescriptionsByDoctorID(c.Request.Context(), doctorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respondList(c, prescriptions)
}

func (h *Handler) ListByPatient(c *gin.Context) {
	patientID, err := handler.ParseID(c, "patientId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	prescriptions, err := h.service.GetPrescriptionsByPatientID(c.Request.Context(), patientID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respondList(c, prescriptions)
}

func (h *Handler) respondList(c *gin.Context, prescriptions []*model.Prescription) {
	dtos, err := model.NewPrescriptionDTOs(prescriptions)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}
