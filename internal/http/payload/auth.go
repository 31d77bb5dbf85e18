package payload

import (
	"regexp"
	"secondbrain/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var (
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[@$!%*?&]`)
)

type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks fields one at a time so only the first violated rule
// is reported.
func (s SignupRequest) Validate() error {
	if err := validation.Validate(s.Name, validation.Required); err != nil {
		return err
	}

	if err := validation.Validate(s.Username,
		validation.Required,
		is.Email.Error("Enter a valid email"),
	); err != nil {
		return err
	}

	return validation.Validate(s.Password,
		validation.Required,
		validation.Length(8, 0).Error("Password must be at least 8 characters long"),
		validation.Length(0, 20).Error("Password must be at most 20 characters long"),
		validation.Match(upperRegex).Error("Password must contain at least one uppercase letter"),
		validation.Match(lowerRegex).Error("Password must contain at least one lowercase letter"),
		validation.Match(digitRegex).Error("Password must contain at least one number"),
		validation.Match(specialRegex).Error("Must contain at least one special character (@$!%*?&)"),
	)
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Name:     s.Name,
		Username: s.Username,
		Password: s.Password,
	}
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s SigninRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SigninRequest) ToMessage() core.SigninMessage {
	return core.SigninMessage{
		Username: s.Username,
		Password: s.Password,
	}
}
