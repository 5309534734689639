package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"blog-backend/internal/app/config"
	"blog-backend/internal/app/dto"
	"blog-backend/internal/app/middleware"
	"blog-backend/internal/app/pkg/auth"
	"blog-backend/internal/app/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer поднимает полный стек: gin + sqlite-репозиторий + miniredis
type testServer struct {
	server *httptest.Server
	repo   *repository.Repository
	client *http.Client
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	sessionSvc, err := auth.NewSessionService(mr.Host(), port, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessionSvc.Close() })

	cfg := &config.Config{
		JWT: config.JWTConfig{Token: "test", ExpiresIn: time.Hour},
	}
	jwtSvc := auth.NewJWTService(cfg.JWT.Token, cfg.JWT.ExpiresIn)

	authSvc := &middleware.AuthService{JWT: jwtSvc, Session: sessionSvc}
	h := NewHandler(repo, cfg, jwtSvc, sessionSvc)

	router := gin.New()
	router.Use(middleware.OptionalAuthMiddleware(authSvc))
	router.LoadHTMLGlob("../../../templates/*")
	h.RegisterRoutes(router)
	h.RegisterAPIRoutes(router, authSvc)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		// Редиректам не следуем: проверяем их явно
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testServer{server: server, repo: repo, client: client}
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := ts.client.PostForm(ts.server.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := ts.client.Get(ts.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (ts *testServer) register(t *testing.T, email, password string) *http.Response {
	t.Helper()
	return ts.postForm(t, "/register", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func (ts *testServer) login(t *testing.T, email, password string) *http.Response {
	t.Helper()
	return ts.postForm(t, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// createAdmin заводит пользователя и повышает его напрямую через репозиторий
func (ts *testServer) createAdmin(t *testing.T, email, password string) uint {
	t.Helper()
	user, err := ts.repo.CreateUser(email, password)
	require.NoError(t, err)
	require.NoError(t, ts.repo.UpdateUser(dto.UpdateUserCommand{UserID: user.ID, MakeAdmin: true}))
	return user.ID
}
