// Package api exposes the REST boundary. Handlers translate HTTP
// requests into service calls; all numeric-id parsing happens here,
// before a service is ever invoked.
package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagency/internal/apperror"
)

// pathID parses the :id path parameter. On failure it records an
// invalid-id error and reports false; the caller must return.
func pathID(c *gin.Context, entity string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		_ = c.Error(apperror.NewInvalidID(entity, raw))
		return 0, false
	}
	return id, true
}
