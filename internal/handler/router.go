package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lesson-booking/internal/handler/api"
	"lesson-booking/internal/handler/middleware"
	"lesson-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, lessonHandler *api.LessonHandler, orderHandler *api.OrderHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, lessonHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, lessonHandler *api.LessonHandler, orderHandler *api.OrderHandler) {
	engine.GET("/", liveness)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/lessons", Handler: lessonHandler.List},
		{Method: http.MethodGet, Path: "/lessons/:id", Handler: lessonHandler.Get},
		// Legacy alias kept for older clients
		{Method: http.MethodGet, Path: "/test-lesson/:id", Handler: lessonHandler.Get},
		{Method: http.MethodPut, Path: "/lessons/:id", Handler: lessonHandler.Update},
		{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.Create},
		{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.List},
	})

	engine.GET("/images/*filepath", middleware.ServeImages(cfg.Static.ImagesDir))
}

// @Summary Liveness
// @Description Check if the server is running
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func liveness(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
