package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
)

// Messages shown to the user after an authentication action.
const (
	MsgSignInSuccess       = "Login realizado com sucesso"
	MsgInvalidCredentials  = "E-mail ou senha inválidos"
	MsgSignUpSuccess       = "Conta criada com sucesso"
	MsgEmailAlreadyTaken   = "Este e-mail já está cadastrado"
	MsgSignUpFailed        = "Erro ao criar conta"
	MsgSignOutSuccess      = "Deslogado com sucesso"
	MsgRedirectingToGoogle = "Redirecionando para o Google..."
	MsgGoogleSignInFailed  = "Não foi possível entrar com o Google"
)

// Where the browser goes after each action.
const (
	SignInRedirect  = "/"
	SignUpRedirect  = "/dashboard"
	SignOutRedirect = "/authentication"
	GoogleRedirect  = "/"
)

// Sign-up metric results
const (
	signUpSuccess       = "success"
	signUpAlreadyExists = "already_exists"
	signUpFailure       = "failure"
)

// Failure is what the user is told when an action fails.
type Failure struct {
	Status  int
	Message string
}

// ClassifySignInError maps any sign-in failure to one generic message.
// Unknown email and wrong password are deliberately indistinguishable.
func ClassifySignInError(error) Failure {
	return Failure{Status: http.StatusUnauthorized, Message: MsgInvalidCredentials}
}

// ClassifySignUpError singles out an already registered email; every other
// failure gets the generic message.
func ClassifySignUpError(err error) Failure {
	if core.ErrorCode(err) == core.CodeUserAlreadyExists {
		return Failure{Status: http.StatusConflict, Message: MsgEmailAlreadyTaken}
	}
	return Failure{Status: http.StatusBadRequest, Message: MsgSignUpFailed}
}

// ClassifyGoogleError maps a failed Google sign-in to a message.
func ClassifyGoogleError(error) Failure {
	return Failure{Status: http.StatusBadGateway, Message: MsgGoogleSignInFailed}
}

// AuthService forwards validated input to the configured provider and
// records the outcome. It holds no per-user state.
type AuthService struct {
	provider core.AuthProvider
	metrics  core.Recorder
}

func NewAuthService(provider core.AuthProvider, metrics core.Recorder) *AuthService {
	return &AuthService{
		provider: provider,
		metrics:  metrics,
	}
}

// Provider returns the underlying provider, used by the session guard.
func (s *AuthService) Provider() core.AuthProvider {
	return s.provider
}

func (s *AuthService) SignInWithEmail(
	ctx context.Context,
	email, password string,
) (*core.Session, error) {
	start := time.Now()
	session, err := s.provider.SignInEmail(ctx, core.SignInRequest{
		Email:    email,
		Password: password,
	})
	s.metrics.RecordSignIn(s.provider.Name(), err == nil, time.Since(start))
	if err != nil {
		log.Printf("[Auth] Sign-in failed via %s: %v", s.provider.Name(), err)
		return nil, err
	}
	return session, nil
}

func (s *AuthService) SignUpWithEmail(
	ctx context.Context,
	name, email, password string,
) (*core.Session, error) {
	start := time.Now()
	session, err := s.provider.SignUpEmail(ctx, core.SignUpRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})

	result := signUpSuccess
	switch {
	case err == nil:
	case core.ErrorCode(err) == core.CodeUserAlreadyExists:
		result = signUpAlreadyExists
	default:
		result = signUpFailure
	}
	s.metrics.RecordSignUp(s.provider.Name(), result, time.Since(start))

	if err != nil {
		log.Printf("[Auth] Sign-up failed via %s: %v", s.provider.Name(), err)
		return nil, err
	}
	return session, nil
}

// SignOut ends the session carried by headers. It returns once the
// provider has answered so a redirect never races a live session.
func (s *AuthService) SignOut(ctx context.Context, headers http.Header) error {
	err := s.provider.SignOut(ctx, headers)
	s.metrics.RecordSignOut(err == nil)
	if err != nil {
		log.Printf("[Auth] Sign-out failed via %s: %v", s.provider.Name(), err)
	}
	return err
}

// GoogleSignInURL returns the URL that starts the Google OAuth flow.
func (s *AuthService) GoogleSignInURL(ctx context.Context, state string) (string, error) {
	url, err := s.provider.SocialSignInURL(ctx, "google", state)
	if err != nil {
		log.Printf("[OAuth] Failed to start Google sign-in: %v", err)
		return "", err
	}
	return url, nil
}

// CompleteGoogleSignIn exchanges the callback code for a session.
func (s *AuthService) CompleteGoogleSignIn(ctx context.Context, code string) (*core.Session, error) {
	session, err := s.provider.SocialCallback(ctx, "google", code)
	s.metrics.RecordOAuthCallback("google", err == nil)
	if err != nil {
		log.Printf("[OAuth] Google callback failed: %v", err)
		return nil, err
	}
	return session, nil
}

// GetSession resolves the session carried by headers; (nil, nil) means none.
func (s *AuthService) GetSession(ctx context.Context, headers http.Header) (*core.Session, error) {
	return s.provider.GetSession(ctx, headers)
}
