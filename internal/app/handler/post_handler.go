package handler

import (
	"blog-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// Home главная страница со списком всех постов
func (h *Handler) Home(ctx *gin.Context) {
	posts, err := h.Repository.GetAllPosts()
	if err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	ctx.HTML(200, "index.html", gin.H{
		"posts":   posts,
		"flashes": h.popFlashes(ctx),
	})
}

// UserRoom личная комната: посты текущего пользователя
func (h *Handler) UserRoom(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.flash(ctx, "warning", "Войдите в систему, чтобы получить доступ к личной комнате.")
		h.redirect(ctx, "/login")
		return
	}

	posts, err := h.Repository.GetPostsByUserID(userID)
	if err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	ctx.HTML(200, "user_room.html", gin.H{
		"posts":   posts,
		"flashes": h.popFlashes(ctx),
	})
}

// CreatePost публикация поста из личной комнаты.
// Автор всегда берется из сессии, что бы ни пришло в форме.
func (h *Handler) CreatePost(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		h.flash(ctx, "warning", "Войдите в систему, чтобы получить доступ к личной комнате.")
		h.redirect(ctx, "/login")
		return
	}

	title := ctx.PostForm("title")
	content := ctx.PostForm("content")

	if _, err := h.Repository.CreatePost(title, content, userID); err != nil {
		h.errorHandler(ctx, 500, err)
		return
	}

	h.flash(ctx, "success", "Пост успешно опубликован!")
	h.redirect(ctx, "/user_room")
}
