package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/prescriptions-api/pkg/errors"
)

// BindJSON decodes the request body into obj, reporting malformed input as a bad request
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errors.BadRequest("malformed request body", err)
	}
	return nil
}

// ParseID reads a numeric path parameter
func ParseID(c *gin.Context, param string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.BadRequest(fmt.Sprintf("invalid %s: %q", param, raw), err)
	}
	return id, nil
}
