package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// round2 rounds presentation values (percentages, averages) to 2 decimals,
// halves to even: 3.125 becomes 3.12, 3.135 becomes 3.14.
func round2(value float64) float64 {
	return math.RoundToEven(value*100) / 100
}

// queryID reads a numeric query filter. Absent or unparseable values mean
// "no filter"; ids start at 1 so 0 is a safe sentinel.
func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// pathID parses the :id path segment; ok is false for non-numeric ids.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
