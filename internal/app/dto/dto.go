package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ============ Посты (Posts) ============

type PostResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  *uint  `json:"user_id"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}

// ============ Команды панели администратора ============

// UpdateUserCommand описывает частичное обновление пользователя.
// Пустые строки означают "поле не менять"; MakeAdmin действует только
// в сторону повышения — пути назад нет.
type UpdateUserCommand struct {
	UserID      uint
	NewEmail    string
	NewPassword string
	MakeAdmin   bool
}

// EditPostCommand описывает частичное обновление поста.
type EditPostCommand struct {
	PostID     uint
	NewTitle   string
	NewContent string
}
