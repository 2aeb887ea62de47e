package templates

import (
	"unicode"
	"unicode/utf8"
)

//go:generate templ generate

const appName = "VittaSystem"

func pageTitle(title string) string {
	if title == "" {
		return appName
	}
	return title + " | " + appName
}

// AvatarInitial returns the uppercased first character of name, used when
// the user has no picture. Leading whitespace is kept as is.
func AvatarInitial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// redirectBase shows the page message as the only toast.
func redirectBase(props RedirectPageProps) BaseProps {
	return BaseProps{
		CSRFToken: props.CSRFToken,
		Toasts:    []Toast{{Kind: ToastSuccess, Message: props.Message}},
	}
}
