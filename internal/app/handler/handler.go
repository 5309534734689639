package handler

import (
	"net/http"

	"blog-backend/internal/app/config"
	"blog-backend/internal/app/middleware"
	"blog-backend/internal/app/pkg/auth"
	"blog-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookieMaxAge = 86400

	// ключ в контексте запроса, чтобы не выдавать два разных id за один запрос
	sessionIDContextKey = "browser_session_id"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
}

func NewHandler(r *repository.Repository, cfg *config.Config, jwtSvc *auth.JWTService, sessionSvc *auth.SessionService) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
	}
}

// RegisterStatic регистрируем шаблоны и статику
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./resources")
}

// RegisterRoutes регистрирует HTML-маршруты
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// GET маршруты
	router.GET("/", h.Home)
	router.GET("/register", h.RegisterPage)
	router.GET("/login", h.LoginPage)
	router.GET("/user_room", h.UserRoom)
	router.GET("/admin", h.AdminPanel)
	router.GET("/logout", h.Logout)

	// POST маршруты
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/user_room", h.CreatePost)
	router.POST("/admin", h.AdminAction)
}

// errorHandler централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// sessionID возвращает идентификатор браузерной сессии из cookie,
// при необходимости выдавая новый
func (h *Handler) sessionID(ctx *gin.Context) string {
	if v, ok := ctx.Get(sessionIDContextKey); ok {
		return v.(string)
	}

	sid, err := ctx.Cookie(middleware.SessionCookieName)
	if err != nil || sid == "" {
		sid = uuid.New().String()
		ctx.SetCookie(middleware.SessionCookieName, sid, sessionCookieMaxAge, "/", "", false, true)
	}

	ctx.Set(sessionIDContextKey, sid)
	return sid
}

// flash откладывает одноразовое сообщение до следующей отрисовки
func (h *Handler) flash(ctx *gin.Context, category, message string) {
	sid := h.sessionID(ctx)
	if err := h.SessionService.AddFlash(ctx.Request.Context(), sid, category, message); err != nil {
		logrus.Error("flash: ", err)
	}
}

// popFlashes забирает накопленные сообщения для отрисовки
func (h *Handler) popFlashes(ctx *gin.Context) []auth.FlashMessage {
	sid := h.sessionID(ctx)
	flashes, err := h.SessionService.PopFlashes(ctx.Request.Context(), sid)
	if err != nil {
		logrus.Error("flash: ", err)
		return nil
	}
	return flashes
}

func (h *Handler) redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
}
