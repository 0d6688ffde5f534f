package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
)

// ErrorBody uses a "detail" field as the frontend compatibility contract
// requires.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError maps a typed API error onto its status and detail string.
// Anything foreign gets labeled internal_error so provider stack traces
// never leak.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		ae = apierr.Internal(nil)
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorBody{Detail: ae.Error()})
}

func AbortError(c *gin.Context, err error) {
	ae := apierr.From(err)
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, ErrorBody{Detail: ae.Error()})
}
