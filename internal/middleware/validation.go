package middleware

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
	"github.com/qamarshahid/techprocessing/pkg/logger"
	pwvalidator "github.com/qamarshahid/techprocessing/pkg/validator"
)

// ErrorBody is the JSON body written for rejected requests.
type ErrorBody struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Errors  []pwvalidator.FieldError `json:"errors,omitempty"`
}

// ValidationConfig represents validation middleware configuration
type ValidationConfig struct {
	Validator        pwvalidator.Validator
	CustomValidators map[string]validator.Func
	Logger           *logger.Logger
}

func DefaultValidationConfig(v pwvalidator.Validator) ValidationConfig {
	return ValidationConfig{
		Validator: v,
		Logger:    logger.Nop(),
	}
}

// Validation attaches the strongpassword rule to gin's binding engine and
// renders validation errors left by handlers as a 400 response.
func Validation(config ValidationConfig) gin.HandlerFunc {
	if config.Validator == nil {
		config.Validator = pwvalidator.New()
	}
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := config.Validator.Register(v); err != nil {
			panic(err)
		}
		for tag, fn := range config.CustomValidators {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		var fieldErrors []pwvalidator.FieldError
		message := ""
		for _, ginErr := range c.Errors {
			err := ginErr.Err
			if verrs, ok := err.(validator.ValidationErrors); ok {
				err = config.Validator.Translate(verrs, nil)
			}

			var appErr *apperrors.AppError
			if !stderrors.As(err, &appErr) || appErr.StatusCode() != http.StatusBadRequest {
				continue
			}
			if message == "" {
				message = appErr.Message
			}
			if details, ok := appErr.Details.([]pwvalidator.FieldError); ok {
				fieldErrors = append(fieldErrors, details...)
			}
		}

		if message == "" {
			return
		}

		fields := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields = append(fields, fe.Field+":"+fe.Tag)
		}
		config.Logger.Info("request rejected",
			"request_id", c.GetString(ContextRequestID),
			"path", c.Request.URL.Path,
			"fields", fields,
		)

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
			Status:  "error",
			Message: message,
			Errors:  fieldErrors,
		})
	}
}

// BindJSON binds the request body into obj with gin's validator. On failure
// it records a translated validation error for Validation to render and
// returns false; obj supplies user info for password messages.
func BindJSON(c *gin.Context, v pwvalidator.Validator, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		_ = c.Error(v.Translate(verrs, obj))
	} else {
		_ = c.Error(apperrors.BadRequest("invalid request body", err))
	}
	return false
}
