package handler

import (
	"errors"

	"blog-backend/internal/app/middleware"
	"blog-backend/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPage страница регистрации
func (h *Handler) RegisterPage(ctx *gin.Context) {
	ctx.HTML(200, "register.html", gin.H{
		"flashes": h.popFlashes(ctx),
	})
}

// Register обработка формы регистрации
func (h *Handler) Register(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	// Проверяем существует ли пользователь с таким email
	exists, err := h.Repository.UserExistsByEmail(email)
	if err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}
	if exists {
		h.flash(ctx, "danger", "Пользователь с таким email уже существует!")
		h.redirect(ctx, "/register")
		return
	}

	if _, err := h.Repository.CreateUser(email, password); err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	h.flash(ctx, "success", "Регистрация успешна! Войдите в систему.")
	h.redirect(ctx, "/login")
}

// LoginPage страница входа
func (h *Handler) LoginPage(ctx *gin.Context) {
	ctx.HTML(200, "login.html", gin.H{
		"flashes": h.popFlashes(ctx),
	})
}

// Login обработка формы входа
func (h *Handler) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	// Проверяем пользователя в базе данных: точное совпадение email и пароля
	user, err := h.Repository.FindUserByCredentials(email, password)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, 500, err)
			return
		}
		// Неудача: перерисовываем форму с сообщением
		h.flash(ctx, "danger", "Неверный email или пароль. Попробуйте снова.")
		ctx.HTML(200, "login.html", gin.H{
			"flashes": h.popFlashes(ctx),
		})
		return
	}

	// Привязываем сессию; признак администратора фиксируется здесь
	// и до выхода не перечитывается
	sid := h.sessionID(ctx)
	data := auth.SessionData{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}
	if err := h.SessionService.Create(ctx.Request.Context(), sid, data); err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	h.flash(ctx, "success", "Вы успешно вошли в систему!")
	h.redirect(ctx, "/user_room")
}

// Logout выход из системы
func (h *Handler) Logout(ctx *gin.Context) {
	sid, err := ctx.Cookie(middleware.SessionCookieName)
	if err == nil && sid != "" {
		if err := h.SessionService.Delete(ctx.Request.Context(), sid); err != nil {
			h.errorHandler(ctx, 500, err)
			return
		}
	}

	h.flash(ctx, "info", "Вы вышли из системы.")
	h.redirect(ctx, "/")
}
