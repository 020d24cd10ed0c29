package api

import (
	"errors"
	"net/http"

	reqdto "github.com/cermartin/sr/internal/handler/dto/request"
	resdto "github.com/cermartin/sr/internal/handler/dto/response"
	"github.com/cermartin/sr/internal/handler/httperr"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Check slot availability
// @Description Check whether a breakfast sitting slot is free
// @Tags bookings
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD"
// @Param time query string true "Start time in HH:MM"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	startTime := c.Query("time")
	if date == "" || startTime == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidSlot, "date and time query parameters are required", nil)
		return
	}

	availability, err := h.q.Check(c.Request.Context(), date, startTime)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSlot) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Availability check failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Submit booking
// @Description Book a breakfast sitting; the slot is re-checked at write time
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "That slot has just been booked, please pick another time", nil)
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		case errors.Is(err, commands.ErrBookingRejected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking details", nil)
		case errors.Is(err, commands.ErrCalendarFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
