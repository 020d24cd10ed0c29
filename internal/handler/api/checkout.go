package api

import (
	"errors"
	"net/http"

	reqdto "github.com/cermartin/sr/internal/handler/dto/request"
	resdto "github.com/cermartin/sr/internal/handler/dto/response"
	"github.com/cermartin/sr/internal/handler/httperr"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	orders   commands.OrderCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, orders commands.OrderCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, orders: orders}
}

// @Summary Create checkout session
// @Description Start a hosted payment session for the cart contents
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutSessionRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.CreateSession(c.Request.Context(), req.CartID, req.Contact(), c.GetHeader("Origin"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, commands.ErrPaymentFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment service is temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateSessionResult(result))
}

// @Summary Get checkout session
// @Description Read back a paid session from the payment provider
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionDetailsResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	details, err := h.checkout.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, commands.ErrPaymentNotCompleted) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment has not been completed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment service is temporarily unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionDetails(details))
}

// @Summary Confirm checkout
// @Description Reconcile a paid session into an order and send confirmations
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmCheckoutRequest true "Confirmation request"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.Confirm(c.Request.Context(), req.SessionID, req.CartID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment has not been completed", nil)
		case errors.Is(err, commands.ErrOrderPending):
			// The charge succeeded; only the order row is missing. This path
			// must never read as a failed payment.
			httperr.AbortWithError(c, http.StatusAccepted, err, "Your payment was received and your order is being processed. Please contact support if you do not receive a confirmation email.", nil)
		case errors.Is(err, commands.ErrPaymentFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment service is temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Place order
// @Description Place an order directly from the card payment form
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderPlacedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.orders.PlaceOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPlaceOrderResult(result))
}
