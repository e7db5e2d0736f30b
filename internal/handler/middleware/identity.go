package middleware

import (
	"net/http"
	"strconv"

	"lendhub/internal/handler/httperr"
	"lendhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the pre-resolved numeric id of the acting user.
// There is no authentication; a gateway upstream is trusted to set it.
const SharerHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_user_id"

var errMissingSharerID = errs.New("missing or invalid " + SharerHeader + " header")

func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		id, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerID,
				"Missing or invalid "+SharerHeader+" header")
			return
		}
		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
