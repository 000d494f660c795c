// Package authform is the headless model behind the login/register/forgot
// modal: mode switching, client-side validation and the submit flow.
package authform

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bookhaven/lms-backend/internal/shell/session"
)

// Mode selects which form the modal shows
type Mode string

// Modal modes, mutually exclusive
const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
	ModeForgot   Mode = "forgot"
)

// Navigator performs the post-login redirect
type Navigator interface {
	Navigate(path string)
}

// Fields holds the raw form values
type Fields struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validation payloads per mode. Forgot mode skips password rules entirely.
type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type forgotInput struct {
	Email string `validate:"required,email"`
}

var validate = validator.New()

// Form is the auth modal model
type Form struct {
	mu sync.Mutex

	session   *session.Store
	navigator Navigator

	open        bool
	mode        Mode
	fields      Fields
	fieldErrors map[string]string
	submitting  bool
	notice      string
}

// New creates a closed form in login mode
func New(sess *session.Store, navigator Navigator) *Form {
	return &Form{
		session:     sess,
		navigator:   navigator,
		mode:        ModeLogin,
		fieldErrors: map[string]string{},
	}
}

// Open shows the modal in login mode
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// Close hides the modal and resets it. Ignored while a submission is in
// flight so the form cannot unmount under its own request.
func (f *Form) Close() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.open = false
	f.resetLocked(ModeLogin, "")
	return true
}

// IsOpen reports whether the modal is showing
func (f *Form) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Mode returns the current modal mode
func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// SwitchMode changes modes, clearing field values, field errors and the
// banner error.
func (f *Form) SwitchMode(mode Mode) {
	f.mu.Lock()
	f.resetLocked(mode, "")
	f.mu.Unlock()
	f.session.ClearError()
}

// resetLocked resets form state, optionally carrying an email across
func (f *Form) resetLocked(mode Mode, keepEmail string) {
	f.mode = mode
	f.fields = Fields{Email: keepEmail}
	f.fieldErrors = map[string]string{}
	f.notice = ""
}

// SetFields replaces the form values
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Values returns the current form values
func (f *Form) Values() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// FieldErrors returns the per-field validation messages from the last
// submit attempt
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// IsSubmitting reports whether a submission is in flight
func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Notice returns the non-error status line (e.g. forgot-mode confirmation)
func (f *Form) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// BannerError returns the auth-operation failure from session state
func (f *Form) BannerError() string {
	return f.session.Snapshot().Error
}

// Submit validates the current values and, when they pass, runs the
// operation for the current mode. Validation failures populate the field
// error map and never reach the backend. Returns true when the operation
// succeeded.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}

	mode := f.mode
	fields := f.fields
	errs := validateFields(mode, fields)
	f.fieldErrors = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	f.notice = ""
	f.mu.Unlock()

	f.session.ClearError()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	switch mode {
	case ModeRegister:
		return f.submitRegister(ctx, fields)
	case ModeForgot:
		return f.submitForgot(ctx, fields)
	default:
		return f.submitLogin(ctx, fields)
	}
}

func (f *Form) submitLogin(ctx context.Context, fields Fields) bool {
	result := f.session.Login(ctx, session.Credentials{
		Username: fields.Email,
		Password: fields.Password,
	})
	if !result.Success {
		return false
	}

	f.mu.Lock()
	f.open = false
	f.resetLocked(ModeLogin, "")
	f.mu.Unlock()

	if result.RedirectTo != "" {
		f.navigator.Navigate(result.RedirectTo)
	}
	return true
}

// A successful registration drops the user on the login form with their
// email already filled in; both password fields clear.
func (f *Form) submitRegister(ctx context.Context, fields Fields) bool {
	ok := f.session.Register(ctx, session.RegisterFields{
		Username: fields.Email,
		Name:     fields.Name,
		Email:    fields.Email,
		Password: fields.Password,
	})
	if !ok {
		return false
	}

	f.mu.Lock()
	f.resetLocked(ModeLogin, fields.Email)
	f.notice = "Account created. Sign in to continue."
	f.mu.Unlock()
	return true
}

func (f *Form) submitForgot(ctx context.Context, fields Fields) bool {
	ok := f.session.ForgotPassword(ctx, fields.Email)
	if !ok {
		return false
	}

	f.mu.Lock()
	f.notice = "If that email is registered, a reset link has been sent."
	f.mu.Unlock()
	return true
}

// ============================================================================
// VALIDATION
// ============================================================================

// validateFields maps validator errors onto the field names the form
// renders under.
func validateFields(mode Mode, fields Fields) map[string]string {
	var err error
	switch mode {
	case ModeRegister:
		err = validate.Struct(registerInput{
			Name:            fields.Name,
			Email:           fields.Email,
			Password:        fields.Password,
			ConfirmPassword: fields.ConfirmPassword,
		})
	case ModeForgot:
		err = validate.Struct(forgotInput{Email: fields.Email})
	default:
		err = validate.Struct(loginInput{Email: fields.Email, Password: fields.Password})
	}

	if err == nil {
		return map[string]string{}
	}

	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid input"
		return out
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			out["name"] = "Name is required"
		case "Email":
			if fe.Tag() == "required" {
				out["email"] = "Email is required"
			} else {
				out["email"] = "Enter a valid email address"
			}
		case "Password":
			if fe.Tag() == "required" {
				out["password"] = "Password is required"
			} else {
				out["password"] = "Password must be at least 6 characters"
			}
		case "ConfirmPassword":
			out["confirmPassword"] = "Passwords do not match"
		}
	}
	return out
}
