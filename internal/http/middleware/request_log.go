package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/platform/ctxutil"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
		}
		if id := auth.GetIdentity(c.Request.Context()); id != nil {
			fields = append(fields, "user_id", id.UserID)
		}
		if c.Writer.Status() >= 500 {
			log.Error("Request failed", fields...)
			return
		}
		log.Info("Request handled", fields...)
	}
}
