package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// intQuery parses an integer query parameter, returning def when the
// parameter is absent or malformed.
func intQuery(c *gin.Context, name string, def int64) int64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return value
}
