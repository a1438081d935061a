package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/savings_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// API calls with PostHog. The service is single-user, so every event is
// attributed to one configured distinct ID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper, distinctID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventNameForRoute(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"request_id":  GetRequestID(c.Request.Context()),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(distinctID, eventName, props)
	}
}

// EventNameForRoute derives an event name from a route pattern,
// e.g. ("PUT", "/targets/:id") -> "put_targets_id". Unmatched routes yield "".
func EventNameForRoute(method, fullPath string) string {
	path := strings.Trim(fullPath, "/")
	if path == "" {
		return ""
	}
	path = strings.NewReplacer("/", "_", ":", "", "-", "_", "*", "").Replace(path)
	return strings.ToLower(method) + "_" + path
}
