//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/cermartin/sr/internal/handler/api"
	infracatalog "github.com/cermartin/sr/internal/infra/catalog"
	"github.com/cermartin/sr/internal/usecase/queries"
	"github.com/cermartin/sr/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	handler := api.NewCatalogHandler(queries.NewCatalogQueries(infracatalog.NewCatalog()))
	s.router.GET("/products", handler.ListProducts)
	s.router.GET("/products/:id", handler.GetProduct)
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListProducts() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil)

	var views []queries.ProductView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)

	s.Require().Len(views, 2)
	s.Equal("The Nordic River", views[0].Name)
	s.Equal("£200", views[0].Price)
	s.Equal(int64(20000), views[0].PricePence)
	s.Len(views[0].Variants, 3)
	s.Equal("Coastal Hex", views[1].Name)
	s.Empty(views[1].Variants)
}

func (s *CatalogHandlerTestSuite) TestGetProduct() {
	s.Run("success: product returned by id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/2", nil)

		var view queries.ProductView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)

		s.Equal("Coastal Hex", view.Name)
		s.Equal(int64(4000), view.PricePence)
	})

	s.Run("error: unknown product id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/99", nil)

		httptest.AssertFlatErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})
}
