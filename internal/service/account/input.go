package account

import (
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
	"github.com/heartmarshall/entomoguide-backend/internal/service/validate"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordLen = 72

// RegisterInput holds the self-service registration request.
type RegisterInput struct {
	Name     string  `json:"nome"`
	Email    string  `json:"email"`
	Password string  `json:"senha"`
	Login    *string `json:"login"`
}

func (i *RegisterInput) normalize() {
	i.Name = domain.NormalizeText(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Login = domain.OptionalText(i.Login)
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&i.Password, validation.Required, validation.Length(6, maxPasswordLen)),
		validation.Field(&i.Login, validation.Length(3, 50)),
	)
}

// LoginInput identifies an account by email or login handle.
type LoginInput struct {
	Key      string `json:"email"`
	Password string `json:"senha"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Key, validation.Required),
		validation.Field(&i.Password, validation.Required),
	)
}

// ProfileInput is the allow-list of fields a profile update may change.
// An empty Password keeps the current one. Passwords are taken verbatim,
// as at registration.
type ProfileInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (i *ProfileInput) normalize() {
	i.Name = domain.NormalizeText(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate validates the profile input.
func (i ProfileInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&i.Password, validation.Length(6, maxPasswordLen)),
	)
}

// Upload is a file sent along with a request.
type Upload struct {
	Filename string
	Body     io.Reader
}

// DateRange bounds a dashboard query, both ends inclusive.
type DateRange struct {
	From time.Time `json:"inicio"`
	To   time.Time `json:"fim"`
}

// Validate validates the range.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return domain.NewValidationError("inicio", "start and end dates are required")
	}
	if r.To.Before(r.From) {
		return domain.NewValidationError("fim", "must not be before inicio")
	}
	return nil
}
