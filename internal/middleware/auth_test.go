package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackbuddy/hackbuddy/internal/ctxkeys"
	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/repository"
	"github.com/hackbuddy/hackbuddy/internal/service"
)

type memUserRepo struct {
	users map[string]*model.User
}

func (r *memUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ByID(id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type memProfileRepo struct {
	profiles map[string]*model.Profile
}

func (r *memProfileRepo) ByID(id string) (*model.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (r *memProfileRepo) Create(profile *model.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		r.profiles[profile.ID] = profile
	}
	return nil
}

func (r *memProfileRepo) Update(profile *model.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

type noopStorage struct{}

func (noopStorage) Save(ctx context.Context, path string, data io.Reader) error { return nil }
func (noopStorage) Delete(ctx context.Context, path string) error               { return nil }
func (noopStorage) URL(path string) string                                      { return path }

type noopAnalyzer struct{}

func (noopAnalyzer) AnalyzeResume(ctx context.Context, resumeURL, userID string) (*model.ResumeAnalysis, bool, error) {
	return &model.ResumeAnalysis{}, false, nil
}

func newAuthTestServices() (*service.AuthService, *service.ProfileService, *memUserRepo, *memProfileRepo) {
	userRepo := &memUserRepo{users: map[string]*model.User{}}
	profileRepo := &memProfileRepo{profiles: map[string]*model.Profile{}}
	profileSvc := service.NewProfileService(profileRepo, noopStorage{}, noopAnalyzer{})
	authSvc := service.NewAuthService(userRepo, profileSvc, "test-secret", false, time.Hour)
	return authSvc, profileSvc, userRepo, profileRepo
}

func authProbe(t *testing.T) (http.HandlerFunc, *bool, **model.User) {
	t.Helper()
	called := false
	var seenUser *model.User
	return func(w http.ResponseWriter, r *http.Request) {
		called = true
		seenUser = ctxkeys.User(r.Context())
		w.WriteHeader(http.StatusOK)
	}, &called, &seenUser
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	authSvc, profileSvc, userRepo, profileRepo := newAuthTestServices()
	userRepo.users["user-1"] = &model.User{ID: "user-1", Email: "jane@example.com"}

	token, err := authSvc.GenerateJWT(userRepo.users["user-1"])
	require.NoError(t, err)

	probe, called, seenUser := authProbe(t)
	handler := AuthMiddleware(authSvc, profileSvc)(probe)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, *called)
	require.NotNil(t, *seenUser)
	assert.Equal(t, "user-1", (*seenUser).ID)

	// Session bootstrap created the profile row
	_, ok := profileRepo.profiles["user-1"]
	assert.True(t, ok)
}

func TestAuthMiddlewareNoCookieContinuesUnauthenticated(t *testing.T) {
	authSvc, profileSvc, _, _ := newAuthTestServices()

	probe, called, seenUser := authProbe(t)
	handler := AuthMiddleware(authSvc, profileSvc)(probe)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, *called)
	assert.Nil(t, *seenUser)
}

func TestAuthMiddlewareBadTokenClearsCookie(t *testing.T) {
	authSvc, profileSvc, _, _ := newAuthTestServices()

	probe, called, seenUser := authProbe(t)
	handler := AuthMiddleware(authSvc, profileSvc)(probe)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Nil(t, *seenUser)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestAuthMiddlewareUnknownUserClearsCookie(t *testing.T) {
	authSvc, profileSvc, _, _ := newAuthTestServices()

	token, err := authSvc.GenerateJWT(&model.User{ID: "deleted-user"})
	require.NoError(t, err)

	probe, called, seenUser := authProbe(t)
	handler := AuthMiddleware(authSvc, profileSvc)(probe)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, *called)
	assert.Nil(t, *seenUser)
}

func TestRequireAuth(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	rec := httptest.NewRecorder()
	RequireAuth(next)(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "user-1"}))
	rec = httptest.NewRecorder()
	RequireAuth(next)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
