package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/weatherdi/errors"
)

// DataResponse wraps a successful payload as {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondOK writes data with status 200.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondWithError writes err as {"error": {...}}. Errors that are not an
// *apperrors.AppError are reported as INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}
