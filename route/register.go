package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardgen/config"
	"git.thinkinpower.net/cardgen/data"
	"git.thinkinpower.net/cardgen/middleware"
)

func Register(r *gin.Engine, cfg config.Config) {
	srv := newGenService(cfg)
	g := r.Group("/cardgen")
	{
		g.GET("/index", func(context *gin.Context) {
			context.String(http.StatusOK, "Hello cardgen, date: %s", time.Now().Format(data.DateTimePattern))
		})

		g.GET("/validate/:bin", srv.validateBin)
		g.POST("/generate", srv.generate)
		g.POST("/export", srv.exportBatch)
	}
	r.GET("/metrics", middleware.MetricsHandler())
}
