package forms

// SignInForm is the email/password sign-in form.
type SignInForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,utf16min=8"`
}

var signInMessages = messages{
	"email":    MsgInvalidEmail,
	"password": MsgSignInPasswordLength,
}

// Validate returns nil when the form is acceptable.
func (f SignInForm) Validate() Errors {
	return check(f, signInMessages)
}
