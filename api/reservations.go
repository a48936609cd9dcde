package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagency/internal/apperror"
	"travelagency/internal/service/reservations"
)

type ReservationHandler struct {
	service reservations.ReservationUseCase
}

// reservationRequest carries the resolved-reference form of a
// reservation: the caller supplies ids, not nested objects. Ids are
// textual on the wire.
type reservationRequest struct {
	FlightID    string `json:"flight_id" binding:"required"`
	PassengerID string `json:"passenger_id" binding:"required"`
	Seat        string `json:"seat" binding:"required"`
}

func NewReservationHandler(service reservations.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/lookup", h.lookup)
	router.GET("/flight/:id", h.listByFlight)
	router.GET("/passenger/:id", h.listByPassenger)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *ReservationHandler) list(c *gin.Context) {
	result, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) get(c *gin.Context) {
	id, ok := pathID(c, "reservation")
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

func (h *ReservationHandler) listByFlight(c *gin.Context) {
	id, ok := pathID(c, "flight")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetByFlightID(c.Request.Context(), id))
}

func (h *ReservationHandler) listByPassenger(c *gin.Context) {
	id, ok := pathID(c, "passenger")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetByPassengerID(c.Request.Context(), id))
}

func (h *ReservationHandler) lookup(c *gin.Context) {
	flightID, ok := queryID(c, "flight", "flight_id")
	if !ok {
		return
	}
	passengerID, ok := queryID(c, "passenger", "passenger_id")
	if !ok {
		return
	}
	seat := c.Query("seat")
	if seat == "" {
		_ = c.Error(apperror.NewValidation("seat is required"))
		return
	}

	result, err := h.service.GetByFlightPassengerSeat(c.Request.Context(), flightID, passengerID, seat)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.service.Create(c.Request.Context(), req.flightID, req.passengerID, req.seat)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ReservationHandler) update(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.service.Update(c.Request.Context(), id, req.flightID, req.passengerID, req.seat)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type parsedReservationRequest struct {
	flightID    int64
	passengerID int64
	seat        string
}

func (h *ReservationHandler) bind(c *gin.Context) (parsedReservationRequest, bool) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return parsedReservationRequest{}, false
	}

	flightID, err := strconv.ParseInt(req.FlightID, 10, 64)
	if err != nil {
		_ = c.Error(apperror.NewInvalidID("flight", req.FlightID))
		return parsedReservationRequest{}, false
	}
	passengerID, err := strconv.ParseInt(req.PassengerID, 10, 64)
	if err != nil {
		_ = c.Error(apperror.NewInvalidID("passenger", req.PassengerID))
		return parsedReservationRequest{}, false
	}
	return parsedReservationRequest{flightID: flightID, passengerID: passengerID, seat: req.Seat}, true
}

func queryID(c *gin.Context, entity, param string) (int64, bool) {
	raw := c.Query(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		_ = c.Error(apperror.NewInvalidID(entity, raw))
		return 0, false
	}
	return id, true
}
