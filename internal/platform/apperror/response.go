package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InternalMessage is the only text a client sees for unclassified failures.
const InternalMessage = "internal server error"

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Body is the uniform error response. Error holds either a string or []FieldError.
type Body struct {
	Error any `json:"error"`
}

// Normalize maps err to a status code and response body.
func Normalize(err error) (int, Body) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, Body{Error: fieldErrors(verrs)}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest, Body{Error: "invalid request body"}
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindInternal {
			return http.StatusInternalServerError, Body{Error: InternalMessage}
		}
		return appErr.Kind.Status(), Body{Error: appErr.Message}
	}

	return http.StatusInternalServerError, Body{Error: InternalMessage}
}

// Write normalizes err and writes it as the response. Internal causes are
// logged, never echoed.
func Write(c *gin.Context, err error) {
	status, body := Normalize(err)
	logError(c, status, err)
	c.JSON(status, body)
}

// Abort is Write for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	status, body := Normalize(err)
	logError(c, status, err)
	c.AbortWithStatusJSON(status, body)
}

// Recovery turns panics into the uniform 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "panic", recovered, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, Body{Error: InternalMessage})
	})
}

func logError(c *gin.Context, status int, err error) {
	attrs := []any{"error", err, "status", status, "path", c.FullPath(), "remote_addr", c.ClientIP()}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
		return
	}
	slog.Warn("request rejected", attrs...)
}

func isValidationErrors(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   lowerFirst(fe.Field()),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString(fe) {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString(fe) {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

var registerTagNames sync.Once

// UseWireFieldNames makes gin's validator report fields by their json (or
// form) name, so clients see "itemId" rather than "ItemID".
func UseWireFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
