package validation

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/SundayYogurt/signup_service/internal/dto"
	"github.com/SundayYogurt/signup_service/internal/repository"
)

// FieldError is one failed field with the message of the first rule
// that rejected it.
type FieldError struct {
	Field   string
	Message string
}

// Errors keeps field declaration order (username, email, password),
// which a plain map would lose when marshalled.
type Errors []FieldError

func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(fe.Field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(fe.Message)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the message recorded for field, or "".
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// rules after the first one may assume a non-nil, non-empty value
type rule struct {
	ok  func(v *string) bool
	msg string
}

type fieldSpec struct {
	name  string
	value *string
	rules []rule
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

type Validator struct {
	repo repository.UserRepository
}

func NewValidator(repo repository.UserRepository) *Validator {
	return &Validator{repo: repo}
}

// ValidateSignup runs the per-field rule chains in order, keeping the
// first failure per field.
func (v *Validator) ValidateSignup(input dto.UserSignup) Errors {
	fields := []fieldSpec{
		{
			name:  "username",
			value: input.Username,
			rules: []rule{
				{notEmpty, "Username can not be null"},
				{lengthBetween(4, 32), "Must have min 4 and max 32 characters"},
			},
		},
		{
			name:  "email",
			value: input.Email,
			rules: []rule{
				{notEmpty, "Email can not be null"},
				{wellFormedEmail, "Email is not valid"},
				{v.emailNotTaken, "Email in use"},
			},
		},
		{
			name:  "password",
			value: input.Password,
			rules: []rule{
				{notEmpty, "Password can not be null"},
				{minLength(6), "Password must be at least 6 characters"},
			},
		},
	}

	var errs Errors
	for _, f := range fields {
		for _, r := range f.rules {
			if !r.ok(f.value) {
				errs = append(errs, FieldError{Field: f.name, Message: r.msg})
				break
			}
		}
	}
	return errs
}

func notEmpty(v *string) bool {
	return v != nil && *v != ""
}

func lengthBetween(min, max int) func(v *string) bool {
	return func(v *string) bool {
		return len(*v) >= min && len(*v) <= max
	}
}

func minLength(min int) func(v *string) bool {
	return func(v *string) bool {
		return len(*v) >= min
	}
}

func wellFormedEmail(v *string) bool {
	return emailRegexp.MatchString(*v)
}

// The rule only fails when a user is actually found; a store error
// lets validation pass and surfaces later when the insert fails.
func (v *Validator) emailNotTaken(value *string) bool {
	user, err := v.repo.FindUserByEmail(*value)
	if err != nil {
		return true
	}
	return user == nil || user.ID == 0
}
