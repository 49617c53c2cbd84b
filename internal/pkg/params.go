package pkg

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam parses the ":id" path parameter as a positive integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
