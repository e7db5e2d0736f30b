package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire error envelope: a flat {"error": "..."} object.
// Status travels out of band so the error-collector middleware can replay
// the envelope when a handler recorded an error without writing.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// AbortWithError writes the envelope and preserves the original error on the
// context for the logging and error-collector middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
