package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
	"github.com/qamarshahid/techprocessing/pkg/logger"
	"github.com/qamarshahid/techprocessing/pkg/metrics"
	"github.com/qamarshahid/techprocessing/pkg/security"
)

// TagStrongPassword is the struct tag that runs the password policy. Its
// optional parameter names sibling fields holding personal information:
//
//	Password string `validate:"required,strongpassword=Name Email"`
const TagStrongPassword = "strongpassword"

var defaultMessages = map[string]string{
	"required": "Field is required",
	"email":    "Invalid email format",
	"min":      "Value is too short",
	"max":      "Value is too long",
}

// Validator provides validation functionality
type Validator interface {
	Validate(obj interface{}) error
	ValidateField(field string, value interface{}, rules ...string) error
	Translate(err error, obj interface{}) error
	Check(candidate interface{}, userInfo ...string) security.Result
	Policy() security.Policy
	Engine() *validator.Validate
	Register(v *validator.Validate) error
}

// FieldError describes one failed field in a validation AppError.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type options struct {
	policy     security.Policy
	policyName string
	dict       *security.Dictionary
	log        *logger.Logger
	metrics    *metrics.Metrics
}

type Option func(*options)

func WithPolicy(p security.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithPolicyName labels logs and metrics, e.g. with the user's role.
func WithPolicyName(name string) Option {
	return func(o *options) { o.policyName = name }
}

func WithDictionary(d *security.Dictionary) Option {
	return func(o *options) { o.dict = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

type passwordValidator struct {
	opts   options
	engine *validator.Validate
}

// New returns a Validator enforcing the default policy unless overridden.
func New(opts ...Option) Validator {
	o := options{
		policy:     security.DefaultPolicy(),
		policyName: "default",
		dict:       security.DefaultDictionary(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := &passwordValidator{opts: o, engine: validator.New()}
	v.engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Only fails on an empty tag name.
	_ = v.Register(v.engine)
	return v
}

func (v *passwordValidator) Policy() security.Policy {
	return v.opts.policy
}

func (v *passwordValidator) Engine() *validator.Validate {
	return v.engine
}

// Register attaches the strongpassword tag to an existing engine, such as
// the one behind gin's binding package.
func (v *passwordValidator) Register(engine *validator.Validate) error {
	return engine.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		var candidate interface{}
		if field := fl.Field(); field.IsValid() && field.CanInterface() {
			candidate = field.Interface()
		}
		userInfo := userInfoFrom(fl.Parent(), fl.Param())
		return v.Check(candidate, userInfo...).Valid
	}, true)
}

// Check evaluates candidate with the configured policy plus userInfo, and
// records the verdict. The candidate itself is never logged.
func (v *passwordValidator) Check(candidate interface{}, userInfo ...string) security.Result {
	policy := v.opts.policy
	if len(userInfo) > 0 {
		policy = policy.WithUserInfo(userInfo...)
	}

	start := time.Now()
	res := security.EvaluateValue(candidate, policy, v.opts.dict)
	took := time.Since(start)

	rules := make([]string, 0, len(res.Violations))
	for _, r := range res.Rules() {
		rules = append(rules, string(r))
	}
	v.opts.metrics.ObserveEvaluation(v.opts.policyName, res.Valid, rules, took)

	if res.Valid {
		v.opts.log.Debug("password accepted", "policy", v.opts.policyName)
	} else {
		v.opts.log.Info("password rejected", "policy", v.opts.policyName, "rules", rules)
	}
	return res
}

func (v *passwordValidator) Validate(obj interface{}) error {
	return v.Translate(v.engine.Struct(obj), obj)
}

// Translate turns errors from any go-playground engine into a validation
// AppError with one FieldError per failed field. obj is the validated value;
// it supplies the user info for strongpassword messages and may be nil.
func (v *passwordValidator) Translate(err error, obj interface{}) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.BadRequest("invalid validation target", err)
	}

	root := reflect.ValueOf(obj)
	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := defaultMessages[fe.Tag()]
		if fe.Tag() == TagStrongPassword {
			parent := parentOf(root, fe.StructNamespace())
			msg = v.explain(fe.Value(), userInfoFrom(parent, fe.Param()))
		}
		if msg == "" {
			msg = fe.Error()
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: msg,
		})
	}

	return apperrors.Validation("validation failed", fieldErrors)
}

func (v *passwordValidator) ValidateField(field string, value interface{}, rules ...string) error {
	err := v.engine.Var(value, strings.Join(rules, ","))
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.BadRequest("invalid validation rules", err)
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := defaultMessages[fe.Tag()]
		if fe.Tag() == TagStrongPassword {
			msg = v.explain(fe.Value(), nil)
		}
		if msg == "" {
			msg = fe.Error()
		}
		fieldErrors = append(fieldErrors, FieldError{Field: field, Tag: fe.Tag(), Message: msg})
	}
	return apperrors.Validation("validation failed", fieldErrors)
}

// explain re-runs the policy without recording it, to recover the reason
// that go-playground/validator does not carry.
func (v *passwordValidator) explain(value interface{}, userInfo []string) string {
	policy := v.opts.policy
	if len(userInfo) > 0 {
		policy = policy.WithUserInfo(userInfo...)
	}
	res := security.EvaluateValue(value, policy, v.opts.dict)
	if res.Valid {
		return policy.Summary()
	}
	return res.Reason
}
