package delivery

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/clients"
	"storefront/internal/domain"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// FailWithData is ErrorResponse for failures that still carry something to
// render, such as a failed mutation or a degraded list.
func FailWithData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
		Data:    data,
	})
}

// RedirectResponse answers 303 with the target in both Location and Data.
func RedirectResponse(c *gin.Context, message, target string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["redirect"] = target
	c.Header("Location", target)
	c.JSON(http.StatusSeeOther, Response{
		Status:  "Redirect",
		Message: message,
		Data:    data,
	})
}

func mapErrorToStatus(err error) int {
	var gqlErr *clients.GraphQLError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrPaymentMethodUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return http.StatusConflict
	case errors.As(err, &gqlErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, clients.ErrTransport):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

var userFacing = []error{
	domain.ErrProductNotFound,
	domain.ErrNotAuthenticated,
	domain.ErrNotAdmin,
	domain.ErrCheckoutInProgress,
}

// userMessage is the text shown for err: the backend's first error message,
// the validation detail, or a generic line for failures the user cannot fix.
func userMessage(err error) string {
	var gqlErr *clients.GraphQLError
	if errors.As(err, &gqlErr) {
		return gqlErr.Message()
	}
	if errors.Is(err, domain.ErrPaymentMethodUnavailable) {
		return "Card payment is not available yet. Please choose cash on delivery."
	}
	if errors.Is(err, domain.ErrValidation) {
		msg := err.Error()
		prefix := domain.ErrValidation.Error() + ": "
		if i := strings.Index(msg, prefix); i >= 0 {
			msg = msg[i+len(prefix):]
		}
		return msg
	}
	if errors.Is(err, clients.ErrTransport) || errors.Is(err, context.DeadlineExceeded) {
		return "The store is unavailable right now. Please try again."
	}
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "Something went wrong. Please try again."
}
