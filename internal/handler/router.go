package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cermartin/sr/internal/handler/api"
	"github.com/cermartin/sr/internal/handler/middleware"
	"github.com/cermartin/sr/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, cartHandler *api.CartHandler, bookingHandler *api.BookingHandler, checkoutHandler *api.CheckoutHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, cartHandler, bookingHandler, checkoutHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, cartHandler *api.CartHandler, bookingHandler *api.BookingHandler, checkoutHandler *api.CheckoutHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetProduct},
			})
		}

		carts := apiGroup.Group("/carts")
		{
			addRoutes(carts, []route{
				{Method: http.MethodPost, Path: "", Handler: cartHandler.CreateCart},
				{Method: http.MethodGet, Path: "/:id", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "/:id", Handler: cartHandler.ClearCart},
				{Method: http.MethodPost, Path: "/:id/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/:id/items", Handler: cartHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/:id/items", Handler: cartHandler.RemoveItem},
				{Method: http.MethodPatch, Path: "/:id/drawer", Handler: cartHandler.ToggleDrawer},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.CheckAvailability},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodPost, Path: "/orders", Handler: checkoutHandler.PlaceOrder},
		})

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/sessions", Handler: checkoutHandler.CreateSession},
				{Method: http.MethodGet, Path: "/sessions/:id", Handler: checkoutHandler.GetSession},
				{Method: http.MethodPost, Path: "/confirm", Handler: checkoutHandler.Confirm},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
