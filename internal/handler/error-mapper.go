package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError turns a request binding failure into a 422 with field-level
// detail. No pipeline work happens for these requests.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			detail = append(detail, gin.H{
				"field": fe.Field(),
				"error": "failed on the '" + fe.Tag() + "' rule",
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// predictionError maps any pipeline failure to a single 500 shape, with the
// error text forwarded verbatim.
func predictionError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Prediction error: " + err.Error()})
}
