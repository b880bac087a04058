package server

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"image/png"
	"stegbench/internal/logging"
	"stegbench/pkg/imageio"
	"time"

	_ "stegbench/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

var (
	// best compression to reduce bandwidth costs, since stego images are usually noisy and compress poorly
	responseEncodeOptions = imageio.EncodeOptions{PngCompressionLevel: png.BestCompression}
)

// NewRouter godoc
// @title stegbench API
// @version 1.0
// @description An API to embed, extract and attack hidden payloads in images and to measure the damage
// @BasePath /api/v1
func NewRouter(logger *logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), logging.Middleware(logger))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed", EmbedHandler)
	v1.POST("/extract", ExtractHandler)
	v1.POST("/capacity", CapacityHandler)
	v1.POST("/attack", AttackHandler)
	v1.POST("/metrics", MetricsHandler)

	r.POST("/fb/embed", FlatbuffersEmbedHandler)
	return r
}

func StartServer(port string, logger *logging.Logger) error {
	logger.Info("Starting server", "port", port)
	return NewRouter(logger).Run(fmt.Sprintf(":%s", port))
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":%q, \"status_code\": \"%d\", \"latency\": %q, \"latency_raw\": \"%d\", \"response_size\": %q, \"response_size_raw\": \"%d\", \"client_ip\":%q, \"method\": %q, \"path\": %q, \"error\": %q}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency.String(),
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
