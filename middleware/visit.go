package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/analytics"
	"github.com/modernblog/modernblog/utils"
)

// VisitRecorder appends a site-wide visit record (no post reference) for
// successful public GET requests. Post-detail requests record their own
// visit with the post id in the controller, so that path is skipped here to
// avoid double counting; health checks, static assets and the admin surface
// are not reader traffic and are skipped too.
func VisitRecorder(agg *analytics.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		path := c.Request.URL.Path
		if path == "/health" ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/api/v1/admin/") ||
			strings.HasPrefix(path, "/api/v1/posts/") {
			return
		}

		if err := agg.RecordVisit(nil, c.ClientIP(), c.Request.UserAgent(), c.Request.Referer()); err != nil {
			if utils.Sugar != nil {
				utils.Sugar.Warnf("failed to record visit for %s: %v", path, err)
			}
		}
	}
}
