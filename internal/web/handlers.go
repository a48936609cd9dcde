package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelagency/internal/dto"
)

// Handler renders the agency pages. All data comes from the REST API;
// form posts are forwarded to it and redirect back to the listing.
type Handler struct {
	client *Client
	log    *zap.SugaredLogger
}

func NewHandler(client *Client, log *zap.SugaredLogger) *Handler {
	return &Handler{client: client, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.index)

	router.GET("/flights", h.flights)
	router.POST("/flights/create", h.createFlight)
	router.POST("/flights/delete", h.deleteFlight)

	router.GET("/passengers", h.passengers)
	router.POST("/passengers/create", h.createPassenger)
	router.POST("/passengers/delete", h.deletePassenger)

	router.GET("/reservations", h.reservations)
	router.POST("/reservations/create", h.createReservation)
	router.POST("/reservations/delete", h.deleteReservation)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) flights(c *gin.Context) {
	ctx := c.Request.Context()

	origin := c.Query("origin")
	destination := c.Query("destination")
	date := c.Query("date")

	var (
		flights []dto.Flight
		err     error
	)
	if origin != "" || destination != "" || date != "" {
		flights, err = h.client.SearchFlights(ctx, origin, destination, date)
	} else {
		flights, err = h.client.Flights(ctx)
	}
	if err != nil {
		h.renderError(c, "flights.html", err)
		return
	}

	c.HTML(http.StatusOK, "flights.html", gin.H{
		"Flights":     flights,
		"Origin":      origin,
		"Destination": destination,
		"Date":        date,
		"Error":       c.Query("error"),
	})
}

func (h *Handler) createFlight(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.PostForm("date"))
	if err != nil {
		h.redirectError(c, "/flights", "date must be formatted as YYYY-MM-DD")
		return
	}

	_, err = h.client.CreateFlight(c.Request.Context(), dto.FlightInput{
		Origin:      c.PostForm("origin"),
		Destination: c.PostForm("destination"),
		Date:        date,
	})
	if err != nil {
		h.redirectError(c, "/flights", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/flights")
}

func (h *Handler) deleteFlight(c *gin.Context) {
	if err := h.client.DeleteFlight(c.Request.Context(), c.PostForm("id")); err != nil {
		h.redirectError(c, "/flights", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/flights")
}

func (h *Handler) passengers(c *gin.Context) {
	passengers, err := h.client.Passengers(c.Request.Context())
	if err != nil {
		h.renderError(c, "passengers.html", err)
		return
	}
	c.HTML(http.StatusOK, "passengers.html", gin.H{
		"Passengers": passengers,
		"Error":      c.Query("error"),
	})
}

func (h *Handler) createPassenger(c *gin.Context) {
	birthDate, err := time.Parse(time.DateOnly, c.PostForm("birth_date"))
	if err != nil {
		h.redirectError(c, "/passengers", "birth date must be formatted as YYYY-MM-DD")
		return
	}

	_, err = h.client.CreatePassenger(c.Request.Context(), dto.PassengerInput{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		BirthDate: birthDate,
	})
	if err != nil {
		h.redirectError(c, "/passengers", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/passengers")
}

func (h *Handler) deletePassenger(c *gin.Context) {
	if err := h.client.DeletePassenger(c.Request.Context(), c.PostForm("id")); err != nil {
		h.redirectError(c, "/passengers", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/passengers")
}

func (h *Handler) reservations(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		reservations []dto.Reservation
		err          error
	)
	switch {
	case c.Query("flight_id") != "":
		reservations, err = h.client.ReservationsByFlight(ctx, c.Query("flight_id"))
	case c.Query("passenger_id") != "":
		reservations, err = h.client.ReservationsByPassenger(ctx, c.Query("passenger_id"))
	default:
		reservations, err = h.client.Reservations(ctx)
	}
	if err != nil {
		h.renderError(c, "reservations.html", err)
		return
	}

	c.HTML(http.StatusOK, "reservations.html", gin.H{
		"Reservations": reservations,
		"FlightID":     c.Query("flight_id"),
		"PassengerID":  c.Query("passenger_id"),
		"Error":        c.Query("error"),
	})
}

func (h *Handler) createReservation(c *gin.Context) {
	_, err := h.client.CreateReservation(
		c.Request.Context(),
		c.PostForm("flight_id"),
		c.PostForm("passenger_id"),
		c.PostForm("seat"),
	)
	if err != nil {
		h.redirectError(c, "/reservations", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/reservations")
}

func (h *Handler) deleteReservation(c *gin.Context) {
	if err := h.client.DeleteReservation(c.Request.Context(), c.PostForm("id")); err != nil {
		h.redirectError(c, "/reservations", err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/reservations")
}

func (h *Handler) renderError(c *gin.Context, template string, err error) {
	h.log.Warnw("api call failed", "error", err)
	c.HTML(http.StatusBadGateway, template, gin.H{"Error": err.Error()})
}

func (h *Handler) redirectError(c *gin.Context, path, message string) {
	c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(message))
}
