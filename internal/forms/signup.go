package forms

// SignUpForm is the account creation form.
type SignUpForm struct {
	Name            string `form:"name"            validate:"required"`
	Email           string `form:"email"           validate:"required,email"`
	Password        string `form:"password"        validate:"required,utf16min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,utf16min=6,eqfield=Password"`
}

var signUpMessages = messages{
	"name":                    MsgNameRequired,
	"email":                   MsgInvalidEmail,
	"password":                MsgSignUpPasswordLength,
	"confirmPassword":         MsgConfirmPassword,
	"confirmPassword.eqfield": MsgPasswordsMismatch,
}

// Validate returns nil when the form is acceptable. A confirmation that
// differs from the password is reported on confirmPassword.
func (f SignUpForm) Validate() Errors {
	return check(f, signUpMessages)
}
