package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

// ParseQueryIntParam reads an integer query parameter, falling back to
// def when the parameter is absent.
func ParseQueryIntParam(c *gin.Context, param string, def int) (int, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return def, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, err
	}
	return val, nil
}
