package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/shared/errors"
)

// ParseUintParam parses and validates a numeric ID from a URL path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
