package forms

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Validation messages shown next to each field.
const (
	MsgInvalidEmail         = "E-mail inválido"
	MsgSignInPasswordLength = "A senha deve ter no mínimo 8 caracteres"
	MsgNameRequired         = "Nome é obrigatório"
	MsgSignUpPasswordLength = "Senha deve ter no mínimo 6 caracteres"
	MsgConfirmPassword      = "Confirme sua senha"
	MsgPasswordsMismatch    = "As senhas não conferem"
)

// Errors maps a form field name to the message shown under it.
type Errors map[string]string

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their form name ("confirmPassword"), not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("utf16min", utf16Min); err != nil {
		panic(err)
	}
	return v
}

// utf16Min checks length in UTF-16 code units, the way browsers count
// characters, so "🔥" counts as two.
func utf16Min(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("forms: bad utf16min param " + fl.Param())
	}
	return utf16Len(fl.Field().String()) >= n
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// messages resolves a failed rule to text. Keys are "field.tag" for a
// rule-specific message or "field" for the field's default.
type messages map[string]string

func (m messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	return m[field]
}

// check runs the validator over form and translates the first failure of
// each field. Fields are never reported twice.
func check(form any, msgs messages) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"form": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if out.Has(field) {
			continue
		}
		out[field] = msgs.lookup(field, fe.Tag())
	}
	return out
}
