package api

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabohhh/Casinomongo2/internal/auth"
	"github.com/Gabohhh/Casinomongo2/internal/domain"
	"github.com/Gabohhh/Casinomongo2/internal/middleware"
	"github.com/Gabohhh/Casinomongo2/internal/session"
	"github.com/Gabohhh/Casinomongo2/internal/store"
	"github.com/Gabohhh/Casinomongo2/internal/utils"
)

// newTestRouter wires the panel routes over in-memory stores.
func newTestRouter(t *testing.T, st store.Store, sessions session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"formatCurrency": utils.FormatCurrency,
		"formatBalance":  utils.FormatCurrency,
	})
	r.LoadHTMLGlob("../../templates/*.html")
	RegisterRoutes(r, st, sessions, bcrypt.MinCost)
	return r
}

// createUser inserts a user with a bcrypt-hashed password.
func createUser(t *testing.T, st store.Store, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{Email: email, Password: hash, Role: role, Balance: 100, Active: true}
	require.NoError(t, st.CreateUser(context.Background(), user))
	return user
}

// sessionCookie establishes a session for the user directly in the store.
func sessionCookie(t *testing.T, sessions session.Store, user *domain.User) *http.Cookie {
	t.Helper()
	token, err := sessions.Create(context.Background(), session.Data{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// postForm issues an application/x-www-form-urlencoded POST.
func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := session.NewMemoryStore()
	r := newTestRouter(t, st, sessions)
	createUser(t, st, "player@casino.com", "secret123", domain.RoleNormal)

	w := postForm(r, "/login", url.Values{"email": {"player@casino.com"}, "password": {"secret123"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// The cookie carries a token resolvable against the session store
	resp := w.Result()
	require.NotEmpty(t, resp.Cookies())
	var token string
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)
	data, err := sessions.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "player@casino.com", data.Email)
	assert.Equal(t, "normal", data.Role)

	// And the dashboard renders with it
	w = get(r, "/dashboard", &http.Cookie{Name: middleware.SessionCookie, Value: token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "player@casino.com")
}

func TestLoginFailureIsGeneric(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := session.NewMemoryStore()
	r := newTestRouter(t, st, sessions)
	createUser(t, st, "player@casino.com", "secret123", domain.RoleNormal)

	wrongPassword := postForm(r, "/login", url.Values{"email": {"player@casino.com"}, "password": {"nope"}})
	unknownEmail := postForm(r, "/login", url.Values{"email": {"ghost@casino.com"}, "password": {"secret123"}})

	assert.Equal(t, http.StatusOK, wrongPassword.Code)
	assert.Equal(t, http.StatusOK, unknownEmail.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
	// No distinction between a missing account and a wrong password
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogoutClearsSession(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := session.NewMemoryStore()
	r := newTestRouter(t, st, sessions)
	user := createUser(t, st, "player@casino.com", "secret123", domain.RoleNormal)
	cookie := sessionCookie(t, sessions, user)

	w := get(r, "/logout", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// The old token no longer resolves
	_, err := sessions.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrNotFound)
	w = get(r, "/dashboard", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestHomeRedirects(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := session.NewMemoryStore()
	r := newTestRouter(t, st, sessions)
	user := createUser(t, st, "player@casino.com", "secret123", domain.RoleNormal)

	w := get(r, "/")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = get(r, "/", sessionCookie(t, sessions, user))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDashboardShowsCurrentBalance(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := session.NewMemoryStore()
	r := newTestRouter(t, st, sessions)
	user := createUser(t, st, "player@casino.com", "secret123", domain.RoleNormal)
	cookie := sessionCookie(t, sessions, user)

	// Balance changed after the session was created; the dashboard
	// re-fetches the record so the new value shows up
	user.Balance = 1234.5
	require.NoError(t, st.UpdateUser(context.Background(), user))

	w := get(r, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$1,234.50")
	assert.Contains(t, w.Body.String(), "Registered users: 1")
}
