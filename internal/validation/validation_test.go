package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SundayYogurt/signup_service/internal/domain"
	"github.com/SundayYogurt/signup_service/internal/dto"
	"github.com/SundayYogurt/signup_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func validSignup() dto.UserSignup {
	return dto.UserSignup{
		Username: strPtr("user1"),
		Email:    strPtr("user1@mail.com"),
		Password: strPtr("Password1"),
	}
}

func TestValidateSignup_ValidPayload(t *testing.T) {
	v := NewValidator(repository.NewInMemoryUserRepository())

	errs := v.ValidateSignup(validSignup())

	assert.Empty(t, errs)
}

func TestValidateSignup_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   *string
		message string
	}{
		{"username null", "username", nil, "Username can not be null"},
		{"username empty", "username", strPtr(""), "Username can not be null"},
		{"username too short", "username", strPtr("usr"), "Must have min 4 and max 32 characters"},
		{"username too long", "username", strPtr(strings.Repeat("a", 33)), "Must have min 4 and max 32 characters"},
		{"email null", "email", nil, "Email can not be null"},
		{"email missing at", "email", strPtr("mail.com"), "Email is not valid"},
		{"email dotted no at", "email", strPtr("user.mail.com"), "Email is not valid"},
		{"email missing tld", "email", strPtr("user@mail"), "Email is not valid"},
		{"password null", "password", nil, "Password can not be null"},
		{"password too short", "password", strPtr("P4ssw"), "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(repository.NewInMemoryUserRepository())
			input := validSignup()
			switch tt.field {
			case "username":
				input.Username = tt.value
			case "email":
				input.Email = tt.value
			case "password":
				input.Password = tt.value
			}

			errs := v.ValidateSignup(input)

			assert.Equal(t, tt.message, errs.Get(tt.field))
		})
	}
}

func TestValidateSignup_BoundaryUsernameLengths(t *testing.T) {
	for _, n := range []int{4, 32} {
		v := NewValidator(repository.NewInMemoryUserRepository())
		input := validSignup()
		input.Username = strPtr(strings.Repeat("a", n))

		errs := v.ValidateSignup(input)

		assert.Empty(t, errs.Get("username"), "length %d should pass", n)
	}
}

func TestValidateSignup_EmailInUse(t *testing.T) {
	repo := repository.NewInMemoryUserRepository()
	_, err := repo.CreateUser(&domain.User{
		Username: "user1",
		Email:    "user1@mail.com",
		Inactive: true,
	})
	require.NoError(t, err)

	v := NewValidator(repo)
	errs := v.ValidateSignup(validSignup())

	assert.Equal(t, "Email in use", errs.Get("email"))
}

func TestValidateSignup_KeepsDeclarationOrder(t *testing.T) {
	v := NewValidator(repository.NewInMemoryUserRepository())

	errs := v.ValidateSignup(dto.UserSignup{Password: strPtr("Password1")})

	require.Len(t, errs, 2)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "email", errs[1].Field)
}

func TestErrors_MarshalJSONOrder(t *testing.T) {
	errs := Errors{
		{Field: "username", Message: "Username can not be null"},
		{Field: "email", Message: "Email can not be null"},
	}

	out, err := json.Marshal(errs)
	require.NoError(t, err)

	body := string(out)
	assert.JSONEq(t, `{"username":"Username can not be null","email":"Email can not be null"}`, body)
	assert.Less(t, strings.Index(body, `"username"`), strings.Index(body, `"email"`))
}
