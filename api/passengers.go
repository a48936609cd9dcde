package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagency/internal/apperror"
	"travelagency/internal/dto"
	"travelagency/internal/service/passengers"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *PassengerHandler) list(c *gin.Context) {
	result, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := pathID(c, "passenger")
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

func (h *PassengerHandler) create(c *gin.Context) {
	var in dto.PassengerInput
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

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := pathID(c, "passenger")
	if !ok {
		return
	}
	var body dto.Passenger
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

func (h *PassengerHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "passenger")
	if !ok {
		return
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
