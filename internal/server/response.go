package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the standard error body returned by the API.
type ErrorResponse struct {
	Timestamp time.Time   `json:"timestamp"`
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Message   interface{} `json:"message"`
	Path      string      `json:"path"`
}

// respondError writes an ErrorResponse with the given status and aborts the
// handler chain.
func respondError(c *gin.Context, status int, title string, message interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// respondBindError translates a request binding failure into a 400.
// Validation failures carry a field-to-reason map; malformed JSON carries
// the decoder's message.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		respondError(c, http.StatusBadRequest, "Validation Failed", fields)
		return
	}
	respondError(c, http.StatusBadRequest, "Malformed Request", err.Error())
}

// validationMessage renders one field error in a stable, human-readable form.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
