//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/handler/api"
	resdto "github.com/cermartin/sr/internal/handler/dto/response"
	infracatalog "github.com/cermartin/sr/internal/infra/catalog"
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/tests/common/httptest"
	commandsmock "github.com/cermartin/sr/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)

	s.router.POST("/carts", s.handler.CreateCart)
	s.router.GET("/carts/:id", s.handler.GetCart)
	s.router.DELETE("/carts/:id", s.handler.ClearCart)
	s.router.POST("/carts/:id/items", s.handler.AddItem)
	s.router.PATCH("/carts/:id/items", s.handler.SetQuantity)
	s.router.DELETE("/carts/:id/items", s.handler.RemoveItem)
	s.router.PATCH("/carts/:id/drawer", s.handler.ToggleDrawer)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func stateWith(productID, variantID string, qty int) cart.State {
	catalog := infracatalog.NewCatalog()
	product, _ := catalog.FindByID(productID)
	state := cart.State{}.AddItem(product, variantID)
	return state.SetQuantity(cart.Key{ProductID: productID, VariantID: variantID}, qty)
}

func (s *CartHandlerTestSuite) TestCreateCart() {
	s.Run("success: returns 201 with an empty cart", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any()).
			Return(id, cart.State{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", nil)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.Empty(response.Items)
		s.Zero(response.TotalItems)
		s.False(response.DrawerOpen)
	})
}

func (s *CartHandlerTestSuite) TestGetCart() {
	id := uuid.New()

	s.Run("success: returns 200 with totals and display price", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), id).
			Return(stateWith("1", "deep-ocean", 2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/"+id.String(), nil)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.TotalItems)
		s.Equal(int64(40000), response.TotalPence)
		s.Equal("£400", response.TotalPrice)
		s.Require().Len(response.Items, 1)
		s.Equal("Deep Ocean", response.Items[0].VariantName)
	})

	s.Run("error: 400 for a malformed cart id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/not-a-uuid", nil)
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart ID")
	})

	s.Run("error: 404 for an unknown cart", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), id).
			Return(cart.State{}, commands.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/"+id.String(), nil)
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	id := uuid.New()
	url := "/carts/" + id.String() + "/items"

	s.Run("success: returns 200 with the updated cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), id, "2", "").
			Return(stateWith("2", "", 1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"productId": "2"})

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.TotalItems)
		s.Equal("£40", response.TotalPrice)
	})

	s.Run("error: 400 when productId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 for an unknown product", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), id, "99", "").
			Return(cart.State{}, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"productId": "99"})
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	id := uuid.New()
	url := "/carts/" + id.String() + "/items?productId=1&variantId=midnight"

	s.Run("success: passes the line key and quantity through", func() {
		key := cart.Key{ProductID: "1", VariantID: "midnight"}
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), id, key, 3).
			Return(stateWith("1", "midnight", 3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3})

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.TotalItems)
	})

	s.Run("error: 400 when productId query is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/carts/"+id.String()+"/items", map[string]any{"quantity": 3})
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusBadRequest, "productId")
	})
}

func (s *CartHandlerTestSuite) TestToggleDrawer() {
	id := uuid.New()

	s.Run("success: toggles by default", func() {
		s.mockCommands.EXPECT().ToggleDrawer(gomock.Any(), id).
			Return(cart.State{}.ToggleDrawer(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/carts/"+id.String()+"/drawer", nil)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.DrawerOpen)
	})

	s.Run("success: open=false forces close", func() {
		s.mockCommands.EXPECT().CloseDrawer(gomock.Any(), id).
			Return(cart.State{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/carts/"+id.String()+"/drawer?open=false", nil)

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.DrawerOpen)
	})
}
