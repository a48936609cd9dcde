package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelagency/internal/apperror"
	"travelagency/internal/dto"
	"travelagency/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *FlightHandler) list(c *gin.Context) {
	result, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) search(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			_ = c.Error(apperror.NewValidation("date must be formatted as YYYY-MM-DD"))
			return
		}
		date = &parsed
	}

	result, err := h.service.Search(c.Request.Context(), c.Query("origin"), c.Query("destination"), date)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) create(c *gin.Context) {
	var in dto.FlightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	result, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	var body dto.Flight
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	result, err := h.service.UpdateByID(c.Request.Context(), id, body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
