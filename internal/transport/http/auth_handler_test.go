package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/estate-service/internal/app/account/accounttest"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/login"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/register"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestAuthRoutes(t *testing.T) {
	tokens, clk := newTestTokens()
	users := accounttest.NewUsers()
	hasher := auth.NewHasher(bcrypt.MinCost)

	h := NewAuthHandler(AuthUseCases{
		Register: register.NewInteractor(users, &testutil.Outbox{}, hasher, tokens, &testutil.Applier{}, clk),
		Login:    login.NewInteractor(users, hasher, tokens),
	}, CookieConfig{Name: testCookie, Secure: true})
	e := NewServer(ServerConfig{}, NewAuthenticator(tokens, testCookie), Handlers{Auth: h})

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	type session struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Email   string `json:"email"`
				Role    string `json:"role"`
				IsAgent bool   `json:"isAgent"`
			} `json:"user"`
		} `json:"data"`
	}

	t.Run("register sets the session cookie", func(t *testing.T) {
		rec := post("/api/auth/register", `{"name":"Asha","email":"Asha@Example.com","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "asha@example.com", body.Data.User.Email)
		assert.Equal(t, string(auth.RoleUser), body.Data.User.Role)
		require.NotEmpty(t, body.Data.Token)

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, body.Data.Token, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/", cookie.Path)

		p, err := tokens.Verify(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleUser, p.Role)
	})

	t.Run("agent registration", func(t *testing.T) {
		rec := post("/api/auth/register", `{"name":"Vik","email":"vik@example.com","password":"secret123","isAgent":true}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(auth.RoleAgent), body.Data.User.Role)
		assert.True(t, body.Data.User.IsAgent)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := post("/api/auth/register", `{"name":"Asha","email":"asha@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("short password", func(t *testing.T) {
		rec := post("/api/auth/register", `{"name":"Bo","email":"bo@example.com","password":"123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login", func(t *testing.T) {
		rec := post("/api/auth/login", `{"email":"ASHA@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotNil(t, sessionCookie(rec))
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		wrong := post("/api/auth/login", `{"email":"asha@example.com","password":"nope-nope"}`)
		unknown := post("/api/auth/login", `{"email":"ghost@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		rec := post("/api/auth/logout", "")
		require.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})
}
