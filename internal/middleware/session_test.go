package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/metrics"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newGuardedRouter(provider core.AuthProvider, recorder core.Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	guard := RequireSession(provider, recorder)
	page := func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no user")
			return
		}
		c.String(http.StatusOK, "hello "+user.Name)
	}
	r.GET("/", guard, page)
	r.GET("/dashboard", guard, page)
	return r
}

func TestRequireSession_NoSessionRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAuthProvider(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	provider.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	recorder.EXPECT().RecordSessionLookup(metrics.LookupMissing, gomock.Any()).Times(2)

	r := newGuardedRouter(provider, recorder)
	for _, path := range []string{"/", "/dashboard"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/authentication", w.Header().Get("Location"), path)
		assert.NotContains(t, w.Body.String(), "hello", path)
	}
}

func TestRequireSession_LookupErrorRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAuthProvider(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	provider.EXPECT().Name().Return("http_api").AnyTimes()
	provider.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	recorder.EXPECT().RecordSessionLookup(metrics.LookupError, gomock.Any())

	w := httptest.NewRecorder()
	newGuardedRouter(provider, recorder).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/authentication", w.Header().Get("Location"))
}

func TestRequireSession_SessionPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAuthProvider(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Cookie", "vitta.session_token=abc")

	provider.EXPECT().
		GetSession(gomock.Any(), req.Header).
		Return(&core.Session{
			Token:     "abc",
			ExpiresAt: time.Now().Add(time.Hour),
			User:      core.User{ID: "u1", Name: "Maria"},
		}, nil)

	w := httptest.NewRecorder()
	newGuardedRouter(provider, metrics.NewNoopMetrics()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello Maria", w.Body.String())
}

func TestCurrentUser_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
