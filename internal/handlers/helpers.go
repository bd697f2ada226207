package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
)

// abortHTML writes a plain error body for the browser surface, e.g.
// "company not found" with a 404.
func abortHTML(c *gin.Context, err error) {
	c.String(apierr.StatusOf(err), err.Error())
}

// paramID parses the numeric id path parameter. An unparseable id can never
// match a row, so it is reported as not found.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "%s not found", name)
		return 0, false
	}
	return uint(id), true
}
