package problem

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentType is the media type for Problem Details responses.
const ContentType = "application/problem+json"

// Respond sends a Detail response with the proper content type. The request
// path becomes the instance URI when none is set.
func Respond(c *gin.Context, p Detail) {
	if p.Instance == "" {
		p.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentType)
	c.JSON(p.Status, p)
}

// RespondError converts a standard error to a Detail and responds. Errors
// that are not already a Detail map to an internal server error.
func RespondError(c *gin.Context, err error) {
	var p Detail
	if errors.As(err, &p) {
		Respond(c, p)
		return
	}
	Respond(c, Internal.WithDetail(err.Error()))
}
