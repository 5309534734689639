package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/app/dto"
	"blog-backend/internal/app/middleware"
	"blog-backend/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterAPIRoutes регистрирует REST API маршруты с авторизацией
func (h *Handler) RegisterAPIRoutes(router *gin.Engine, authSvc *middleware.AuthService) {
	api := router.Group("/api")

	// ============ Аутентификация ============
	apiAuth := api.Group("/auth")
	{
		apiAuth.POST("/register", h.ApiRegisterUser)
		apiAuth.POST("/login", h.ApiLoginUser)
		apiAuth.POST("/logout", h.ApiLogoutUser)
		apiAuth.GET("/profile", middleware.AuthMiddleware(authSvc), h.ApiProfile)
	}

	// ============ Посты ============
	api.GET("/posts", h.ApiListPosts)

	// ============ Пользователи (только администратор) ============
	api.GET("/users", middleware.AuthMiddleware(authSvc), middleware.RequireAdminMiddleware(), h.ApiListUsers)
}

// ApiRegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) ApiRegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Проверяем существует ли пользователь
	exists, err := h.Repository.UserExistsByEmail(request.Email)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("пользователь с таким email уже существует"))
		return
	}

	user, err := h.Repository.CreateUser(request.Email, request.Password)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "пользователь успешно зарегистрирован",
		"user": dto.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}

// ApiLoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Выдает JWT токен и создает сессию с cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *Handler) ApiLoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Проверяем пользователя в базе данных
	user, err := h.Repository.FindUserByCredentials(request.Email, request.Password)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный email или пароль"))
		return
	}

	// JWT токен; признак администратора фиксируется на момент выдачи
	token, err := h.JWTService.Generate(user.ID, user.IsAdmin)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// Создаем сессию в Redis
	sessionID := uuid.New().String()
	sessionData := auth.SessionData{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}
	if err := h.SessionService.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// Устанавливаем cookie с session_id
	ctx.SetCookie(middleware.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}

// ApiLogoutUser выход из системы
// @Summary Выход из системы
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/auth/logout [post]
func (h *Handler) ApiLogoutUser(ctx *gin.Context) {
	sessionID, err := ctx.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.SessionService.Delete(ctx.Request.Context(), sessionID); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "пользователь успешно вышел из системы",
	})
}

// ApiProfile текущий пользователь
// @Summary Профиль пользователя
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *Handler) ApiProfile(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

// ApiListUsers список всех пользователей
// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *Handler) ApiListUsers(ctx *gin.Context) {
	users, err := h.Repository.GetAllUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i, u := range users {
		response[i] = dto.UserResponse{
			ID:      u.ID,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// ApiListPosts список всех постов
// @Summary Список постов
// @Tags Posts
// @Produce json
// @Success 200 {object} dto.PostListResponse
// @Router /api/posts [get]
func (h *Handler) ApiListPosts(ctx *gin.Context) {
	posts, err := h.Repository.GetAllPosts()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	response := make([]dto.PostResponse, len(posts))
	for i, p := range posts {
		response[i] = dto.PostResponse{
			ID:      p.ID,
			Title:   p.Title,
			Content: p.Content,
			UserID:  p.UserID,
		}
	}

	ctx.JSON(http.StatusOK, dto.PostListResponse{
		Posts: response,
		Total: len(response),
	})
}
