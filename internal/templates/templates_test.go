package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestAvatarInitial(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"maria", "M"},
		{"joão", "J"},
		{" joão", " "},
		{"élise", "É"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AvatarInitial(tt.name), "name=%q", tt.name)
	}
}

func TestHomePage_InitialWhenNoImage(t *testing.T) {
	html := render(t, HomePage(HomePageProps{
		User: core.User{Name: "maria", Email: "maria@example.com"},
	}))

	assert.Contains(t, html, `<div class="avatar avatar-initial" aria-hidden="true">M</div>`)
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "Olá, maria")
	assert.Contains(t, html, "maria@example.com")
	assert.Contains(t, html, "Bem-vindo ao VittaSystem")
	assert.Contains(t, html, `action="/sign-out"`)
	assert.Contains(t, html, ">Sair</button>")
}

func TestHomePage_Image(t *testing.T) {
	html := render(t, HomePage(HomePageProps{
		User: core.User{Name: "Maria", Image: "https://lh3.googleusercontent.com/a/pic"},
	}))

	assert.Contains(t, html, `src="https://lh3.googleusercontent.com/a/pic"`)
	assert.NotContains(t, html, "avatar-initial")
}

func TestHomePage_UnsafeImageURL(t *testing.T) {
	html := render(t, HomePage(HomePageProps{
		User: core.User{Name: "Maria", Image: "javascript:alert(1)"},
	}))
	assert.NotContains(t, html, "javascript:")
}

func TestHomePage_EscapesUserInput(t *testing.T) {
	html := render(t, HomePage(HomePageProps{
		User: core.User{Name: "<script>x</script>", Email: "a@b.co"},
	}))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestSignInPage(t *testing.T) {
	html := render(t, SignInPage(SignInPageProps{
		BaseProps: BaseProps{CSRFToken: "csrf-123"},
		Email:     "not-an-email",
		Errors: forms.Errors{
			"email":    forms.MsgInvalidEmail,
			"password": forms.MsgSignInPasswordLength,
		},
		GoogleEnabled: true,
	}))

	assert.Contains(t, html, forms.MsgInvalidEmail)
	assert.Contains(t, html, forms.MsgSignInPasswordLength)
	assert.Contains(t, html, `value="not-an-email"`)
	assert.Contains(t, html, `name="csrf_token" value="csrf-123"`)
	assert.Contains(t, html, "Entrar com Google")
	assert.Contains(t, html, `href="/api/auth/sign-in/google"`)
	assert.Contains(t, html, "onsubmit=")
	assert.Contains(t, html, `href="/authentication/signup"`)
}

func TestSignInPage_WithoutGoogle(t *testing.T) {
	html := render(t, SignInPage(SignInPageProps{}))
	assert.NotContains(t, html, "Entrar com Google")
	assert.NotContains(t, html, "field-error")
}

func TestSignUpPage(t *testing.T) {
	html := render(t, SignUpPage(SignUpPageProps{
		Name:  "Maria",
		Email: "maria@example.com",
		Errors: forms.Errors{
			"confirmPassword": forms.MsgPasswordsMismatch,
		},
	}))

	assert.Contains(t, html, `name="confirmPassword"`)
	assert.Contains(t, html, forms.MsgPasswordsMismatch)
	assert.Contains(t, html, `value="Maria"`)
	assert.Contains(t, html, `href="/authentication"`)
}

func TestToasts(t *testing.T) {
	html := render(t, DashboardPage(DashboardPageProps{
		BaseProps: BaseProps{Toasts: []Toast{
			{Kind: ToastSuccess, Message: "Conta criada com sucesso"},
			{Kind: ToastError, Message: "Erro ao criar conta"},
		}},
		User: core.User{Name: "Maria"},
	}))

	assert.Contains(t, html, `class="toast toast-success" role="status">Conta criada com sucesso`)
	assert.Contains(t, html, `class="toast toast-error" role="alert">Erro ao criar conta`)
	assert.Contains(t, html, "Seja bem vindo")
}

func TestRedirectPage(t *testing.T) {
	html := render(t, RedirectPage(RedirectPageProps{
		Message:   "Redirecionando para o Google...",
		TargetURL: "https://accounts.google.com/o/oauth2/auth?client_id=x&state=y",
	}))

	assert.Contains(t, html, `http-equiv="refresh"`)
	assert.Contains(t, html, "client_id=x&amp;state=y")
	assert.Contains(t, html, "Redirecionando para o Google...")
}

func TestErrorPage(t *testing.T) {
	html := render(t, ErrorPage(ErrorPageProps{Error: "Erro", Message: "Tente novamente"}))
	assert.Contains(t, html, "Tente novamente")
}

func TestLayout(t *testing.T) {
	html := render(t, ErrorPage(ErrorPageProps{Error: "Erro"}))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Erro | VittaSystem</title>")
	assert.Contains(t, html, `<body class="auth-bg">`)
	assert.NotContains(t, html, `class="toasts"`)
	assert.NotContains(t, html, `class="subtitle"`)
}

func TestField(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		html := render(t, field("email", "email", "Email", "a@b", "inválido"))
		assert.Equal(t,
			`<div class="field"><input type="email" name="email" id="email" placeholder="Email" aria-label="Email" value="a@b" aria-invalid="true">`+
				`<span class="field-error">inválido</span></div>`,
			html)
	})

	t.Run("empty", func(t *testing.T) {
		html := render(t, field("password", "password", "Senha", "", ""))
		assert.NotContains(t, html, "value=")
		assert.NotContains(t, html, "aria-invalid")
	})
}

func TestPostForm_OmitsEmptyCSRF(t *testing.T) {
	html := render(t, signOutForm(""))
	assert.Contains(t, html, `action="/sign-out"`)
	assert.NotContains(t, html, "csrf_token")
	assert.Contains(t, html, ">Sair</button></form>")
}

func TestRedirectPage_UnsafeTarget(t *testing.T) {
	html := render(t, RedirectPage(RedirectPageProps{TargetURL: "javascript:alert(1)"}))
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "<title>VittaSystem</title>")
}
