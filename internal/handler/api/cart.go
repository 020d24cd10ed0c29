package api

import (
	"errors"
	"net/http"

	"github.com/cermartin/sr/internal/domain/cart"
	reqdto "github.com/cermartin/sr/internal/handler/dto/request"
	resdto "github.com/cermartin/sr/internal/handler/dto/response"
	"github.com/cermartin/sr/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Create cart
// @Description Create a new empty cart session
// @Tags carts
// @Produce json
// @Success 201 {object} resdto.CartResponse
// @Router /carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	id, state, err := h.cartCommands.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCartState(id, state))
}

// @Summary Get cart
// @Description Get a cart by ID
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	state, err := h.cartCommands.Get(c.Request.Context(), id)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

// @Summary Add cart item
// @Description Add one unit of a product variant to the cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	state, err := h.cartCommands.AddItem(c.Request.Context(), id, req.ProductID, req.VariantID)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

// @Summary Set item quantity
// @Description Set the quantity of a cart line; zero or less removes it
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId query string true "Product ID"
// @Param variantId query string false "Variant ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	key, ok := h.lineKey(c)
	if !ok {
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	state, err := h.cartCommands.SetQuantity(c.Request.Context(), id, key, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

// @Summary Remove cart item
// @Description Remove a line from the cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId query string true "Product ID"
// @Param variantId query string false "Variant ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	key, ok := h.lineKey(c)
	if !ok {
		return
	}

	state, err := h.cartCommands.RemoveItem(c.Request.Context(), id, key)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	state, err := h.cartCommands.Clear(c.Request.Context(), id)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

// @Summary Toggle cart drawer
// @Description Toggle the cart drawer open state; ?open=false forces it closed
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param open query string false "Set to false to close instead of toggling"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/drawer [patch]
func (h *CartHandler) ToggleDrawer(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	var (
		state cart.State
		err   error
	)
	if c.Query("open") == "false" {
		state, err = h.cartCommands.CloseDrawer(c.Request.Context(), id)
	} else {
		state, err = h.cartCommands.ToggleDrawer(c.Request.Context(), id)
	}
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartState(id, state))
}

func (h *CartHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHandler) lineKey(c *gin.Context) (cart.Key, bool) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "productId query parameter is required",
		})
		return cart.Key{}, false
	}
	return cart.Key{ProductID: productID, VariantID: c.Query("variantId")}, true
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Variant not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
