package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "vendorflow/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vendorflow/internal/jobs"
	"vendorflow/internal/service"
)

// JobRunner runs long operations in the background and keeps their status.
type JobRunner interface {
	Start(ctx context.Context, name string, fn jobs.Func) (*jobs.Handle, error)
	Get(ctx context.Context, id string) (jobs.Job, error)
}

type Handler struct {
	svc         service.Functions
	jobs        JobRunner
	softTimeout time.Duration
}

func NewHandler(s service.Functions, j JobRunner, softTimeout time.Duration) *Handler {
	if softTimeout <= 0 {
		softTimeout = 20 * time.Second
	}
	return &Handler{svc: s, jobs: j, softTimeout: softTimeout}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		fn := api.Group("/functions")
		{
			fn.POST("/getDesigners", h.GetDesigners)
			fn.POST("/loadDesigner", h.LoadDesigner)
			fn.POST("/saveVendor", h.SaveVendor)
			fn.POST("/createVendorOrder", h.CreateVendorOrder)
			fn.POST("/saveVendorOrder", h.SaveVendorOrder)
			fn.POST("/sendVendorOrder", h.SendVendorOrder)
		}
		api.GET("/designers/:designerId", h.GetDesigner)
		api.GET("/jobs/:id", h.GetJob)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
