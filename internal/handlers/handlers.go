package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parsePagination(c *gin.Context, defaultLimit int) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, fmt.Errorf("invalid skip parameter")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 0 {
		return 0, 0, fmt.Errorf("invalid limit parameter")
	}

	return skip, limit, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(id), nil
}
