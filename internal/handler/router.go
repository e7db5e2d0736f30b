package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	itemHandler *api.ItemHandler,
	userHandler *api.UserHandler,
	requestHandler *api.RequestHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, itemHandler, userHandler, requestHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	itemHandler *api.ItemHandler,
	userHandler *api.UserHandler,
	requestHandler *api.RequestHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", middleware.MetricsHandler())

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.CreateUser},
			{Method: http.MethodGet, Path: "", Handler: userHandler.GetUsers},
			{Method: http.MethodGet, Path: "/:userId", Handler: userHandler.GetUser},
			{Method: http.MethodPatch, Path: "/:userId", Handler: userHandler.UpdateUser},
			{Method: http.MethodDelete, Path: "/:userId", Handler: userHandler.DeleteUser},
		})
	}

	sharer := middleware.RequireSharerID()

	items := engine.Group("/items")
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: itemHandler.CreateItem, Mw: []gin.HandlerFunc{sharer}},
			{Method: http.MethodGet, Path: "", Handler: itemHandler.GetOwnerItems, Mw: []gin.HandlerFunc{sharer}},
			{Method: http.MethodGet, Path: "/search", Handler: itemHandler.SearchItems},
			{Method: http.MethodGet, Path: "/:itemId", Handler: itemHandler.GetItem, Mw: []gin.HandlerFunc{sharer}},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: itemHandler.UpdateItem, Mw: []gin.HandlerFunc{sharer}},
			{Method: http.MethodDelete, Path: "/:itemId", Handler: itemHandler.DeleteItem},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: itemHandler.CreateComment, Mw: []gin.HandlerFunc{sharer}},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(sharer)
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetBookerBookings},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.GetOwnerBookings},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: bookingHandler.GetBooking},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: bookingHandler.ApproveBooking},
		})
	}

	requests := engine.Group("/requests")
	requests.Use(sharer)
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.GetOwnRequests},
			{Method: http.MethodGet, Path: "/all", Handler: requestHandler.GetAllRequests},
			{Method: http.MethodGet, Path: "/:requestId", Handler: requestHandler.GetRequest},
		})
	}
}

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
