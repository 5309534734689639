package handler

import (
	"errors"
	"strconv"

	"blog-backend/internal/app/dto"
	"blog-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Закрытый набор действий панели администратора
type adminAction string

const (
	actionUpdateUser adminAction = "update_user"
	actionDeleteUser adminAction = "delete_user"
	actionEditPost   adminAction = "edit_post"
	actionDeletePost adminAction = "delete_post"
)

var errUnknownAction = errors.New("unknown admin action")

// parseAdminAction валидирует поле action до диспетчеризации
func parseAdminAction(s string) (adminAction, error) {
	switch a := adminAction(s); a {
	case actionUpdateUser, actionDeleteUser, actionEditPost, actionDeletePost:
		return a, nil
	}
	return "", errUnknownAction
}

// AdminPanel панель администратора
func (h *Handler) AdminPanel(ctx *gin.Context) {
	if !middleware.IsCurrentUserAdmin(ctx) {
		h.flash(ctx, "danger", "Доступ запрещён!")
		h.redirect(ctx, "/")
		return
	}

	h.renderAdminPanel(ctx)
}

// AdminAction обработка формы панели администратора
func (h *Handler) AdminAction(ctx *gin.Context) {
	if !middleware.IsCurrentUserAdmin(ctx) {
		h.flash(ctx, "danger", "Доступ запрещён!")
		h.redirect(ctx, "/")
		return
	}

	action, err := parseAdminAction(ctx.PostForm("action"))
	if err != nil {
		// Неизвестное действие отбрасывается до диспетчеризации
		h.renderAdminPanel(ctx)
		return
	}

	switch action {
	case actionUpdateUser:
		h.adminUpdateUser(ctx)
	case actionDeleteUser:
		h.adminDeleteUser(ctx)
	case actionEditPost:
		h.adminEditPost(ctx)
	case actionDeletePost:
		h.adminDeletePost(ctx)
	}

	h.renderAdminPanel(ctx)
}

func (h *Handler) renderAdminPanel(ctx *gin.Context) {
	users, err := h.Repository.GetAllUsers()
	if err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}
	posts, err := h.Repository.GetAllPosts()
	if err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	ctx.HTML(200, "admin_panel.html", gin.H{
		"users":   users,
		"posts":   posts,
		"flashes": h.popFlashes(ctx),
	})
}

func (h *Handler) adminUpdateUser(ctx *gin.Context) {
	userID, ok := formID(ctx, "user_id")
	if !ok {
		return
	}

	cmd := dto.UpdateUserCommand{
		UserID:      userID,
		NewEmail:    ctx.PostForm("new_email"),
		NewPassword: ctx.PostForm("new_password"),
		MakeAdmin:   ctx.PostForm("make_admin") == "true",
	}

	if err := h.Repository.UpdateUser(cmd); err != nil {
		// Отсутствующий пользователь молча игнорируется
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, 500, err)
		}
		return
	}

	h.flash(ctx, "success", "Информация пользователя обновлена.")
}

func (h *Handler) adminDeleteUser(ctx *gin.Context) {
	userID, ok := formID(ctx, "user_id")
	if !ok {
		return
	}

	// Посты пользователя не удаляются и остаются без владельца
	if err := h.Repository.DeleteUser(userID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, 500, err)
		}
		return
	}

	h.flash(ctx, "success", "Пользователь удалён.")
}

func (h *Handler) adminEditPost(ctx *gin.Context) {
	postID, ok := formID(ctx, "post_id")
	if !ok {
		return
	}

	cmd := dto.EditPostCommand{
		PostID:     postID,
		NewTitle:   ctx.PostForm("new_title"),
		NewContent: ctx.PostForm("new_content"),
	}

	if err := h.Repository.EditPost(cmd); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, 500, err)
		}
		return
	}

	h.flash(ctx, "success", "Пост обновлён.")
}

func (h *Handler) adminDeletePost(ctx *gin.Context) {
	postID, ok := formID(ctx, "post_id")
	if !ok {
		return
	}

	if err := h.Repository.DeletePost(postID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorHandler(ctx, 500, err)
		}
		return
	}

	h.flash(ctx, "success", "Пост удалён.")
}

// formID читает числовой id из формы; кривое значение равносильно
// отсутствующей записи
func formID(ctx *gin.Context, field string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.PostForm(field), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
