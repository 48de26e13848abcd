package handlers

import (
	"strconv"
	"strings"
	"time"

	"cabtour/models"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// bindJSON decodes the request body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.GetLogger().Debug("Invalid request body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		utils.RespondError(c, utils.Validation("", "invalid request body: "+err.Error()))
		return false
	}
	return true
}

// pageFromQuery reads ?page=&limit=. Services clamp the values.
func pageFromQuery(c *gin.Context) models.Page {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return models.Page{Number: number, Size: size}
}

// dateQuery parses an optional YYYY-MM-DD query parameter. When nextDay is
// set the result is midnight after that day, an exclusive upper bound.
func dateQuery(c *gin.Context, name string, nextDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, utils.Validation(name, name+" must be a date (YYYY-MM-DD)")
	}
	if nextDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}
