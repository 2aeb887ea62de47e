package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignInForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form SignInForm
		want Errors
	}{
		{
			name: "valid",
			form: SignInForm{Email: "maria@example.com", Password: "12345678"},
			want: nil,
		},
		{
			name: "invalid email",
			form: SignInForm{Email: "maria", Password: "12345678"},
			want: Errors{"email": MsgInvalidEmail},
		},
		{
			name: "empty email",
			form: SignInForm{Email: "", Password: "12345678"},
			want: Errors{"email": MsgInvalidEmail},
		},
		{
			name: "short password",
			form: SignInForm{Email: "maria@example.com", Password: "1234567"},
			want: Errors{"password": MsgSignInPasswordLength},
		},
		{
			name: "both invalid",
			form: SignInForm{Email: "x", Password: ""},
			want: Errors{"email": MsgInvalidEmail, "password": MsgSignInPasswordLength},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate())
		})
	}
}

func TestSignUpForm_Validate(t *testing.T) {
	valid := SignUpForm{
		Name:            "Maria",
		Email:           "maria@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	tests := []struct {
		name   string
		mutate func(f *SignUpForm)
		want   Errors
	}{
		{
			name:   "valid",
			mutate: func(f *SignUpForm) {},
			want:   nil,
		},
		{
			name:   "missing name",
			mutate: func(f *SignUpForm) { f.Name = "" },
			want:   Errors{"name": MsgNameRequired},
		},
		{
			name:   "invalid email",
			mutate: func(f *SignUpForm) { f.Email = "not-an-email" },
			want:   Errors{"email": MsgInvalidEmail},
		},
		{
			name: "short password",
			mutate: func(f *SignUpForm) {
				f.Password = "12345"
				f.ConfirmPassword = "12345"
			},
			want: Errors{
				"password":        MsgSignUpPasswordLength,
				"confirmPassword": MsgConfirmPassword,
			},
		},
		{
			name:   "empty confirmation",
			mutate: func(f *SignUpForm) { f.ConfirmPassword = "" },
			want:   Errors{"confirmPassword": MsgConfirmPassword},
		},
		{
			name:   "mismatch attaches to confirmPassword",
			mutate: func(f *SignUpForm) { f.ConfirmPassword = "secret-other" },
			want:   Errors{"confirmPassword": MsgPasswordsMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			assert.Equal(t, tt.want, f.Validate())
		})
	}
}

func TestSignUpForm_MismatchNeverOnPassword(t *testing.T) {
	for _, confirm := range []string{"a", "abcdef", "secret ", strings.Repeat("x", 40)} {
		f := SignUpForm{Name: "M", Email: "m@example.com", Password: "secret", ConfirmPassword: confirm}
		errs := f.Validate()
		assert.True(t, errs.Has("confirmPassword"), "confirm=%q", confirm)
		assert.False(t, errs.Has("password"), "confirm=%q", confirm)
	}
}

func TestErrors_Get(t *testing.T) {
	errs := Errors{"email": MsgInvalidEmail}
	assert.Equal(t, MsgInvalidEmail, errs.Get("email"))
	assert.Empty(t, errs.Get("password"))

	var none Errors
	assert.False(t, none.Has("email"))
}

func TestPasswordLength_CountsUTF16Units(t *testing.T) {
	t.Run("sign in", func(t *testing.T) {
		// 4 runes, 8 UTF-16 units
		f := SignInForm{Email: "maria@example.com", Password: "🔥🔥🔥🔥"}
		assert.Nil(t, f.Validate())

		f.Password = "🔥🔥🔥"
		assert.Equal(t, Errors{"password": MsgSignInPasswordLength}, f.Validate())
	})

	t.Run("sign up", func(t *testing.T) {
		f := SignUpForm{Name: "Maria", Email: "maria@example.com", Password: "🔥🔥🔥", ConfirmPassword: "🔥🔥🔥"}
		assert.Nil(t, f.Validate())

		f.Password, f.ConfirmPassword = "ção12", "ção12"
		assert.Equal(t, Errors{
			"password":        MsgSignUpPasswordLength,
			"confirmPassword": MsgConfirmPassword,
		}, f.Validate())
	})
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, utf16Len(""))
	assert.Equal(t, 4, utf16Len("joão"))
	assert.Equal(t, 2, utf16Len("🔥"))
}
