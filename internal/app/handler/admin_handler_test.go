package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"blog-backend/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminPanelRequiresAdmin(t *testing.T) {
	ts := setupTestServer(t)

	// Анонимный доступ
	resp := ts.get(t, "/admin")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Обычный пользователь
	ts.register(t, "user@x.com", "p1")
	ts.login(t, "user@x.com", "p1")
	resp = ts.get(t, "/admin")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	home := ts.get(t, "/")
	assert.Contains(t, readBody(t, home), "Доступ запрещён!")
}

func TestAdminActionByNonAdminAppliesNothing(t *testing.T) {
	ts := setupTestServer(t)

	victim, err := ts.repo.CreateUser("victim@x.com", "p1")
	require.NoError(t, err)

	ts.register(t, "user@x.com", "p1")
	ts.login(t, "user@x.com", "p1")

	// Валидные action и user_id не помогают без прав администратора
	resp := ts.postForm(t, "/admin", url.Values{
		"action":  {"delete_user"},
		"user_id": {strconv.Itoa(int(victim.ID))},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, err = ts.repo.GetUserByID(victim.ID)
	assert.NoError(t, err)
}

func TestAdminPanelRendersUsersAndPosts(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)
	_, err = ts.repo.CreatePost("заметный пост", "текст", user.ID)
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.get(t, "/admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "someone@x.com")
	assert.Contains(t, body, "заметный пост")
}

func TestAdminUpdateUserPartial(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.postForm(t, "/admin", url.Values{
		"action":       {"update_user"},
		"user_id":      {strconv.Itoa(int(user.ID))},
		"new_email":    {""},
		"new_password": {""},
		"make_admin":   {"true"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Информация пользователя обновлена.")

	got, err := ts.repo.GetUserByID(user.ID)
	require.NoError(t, err)
	// Пустые поля не изменились, флаг администратора поднят
	assert.Equal(t, "someone@x.com", got.Email)
	assert.Equal(t, "p1", got.Password)
	assert.True(t, got.IsAdmin)
}

func TestAdminUpdateMissingUserIsNoop(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")
	ts.login(t, "admin@x.com", "root")

	resp := ts.postForm(t, "/admin", url.Values{
		"action":    {"update_user"},
		"user_id":   {"9999"},
		"new_email": {"ghost@x.com"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// Нет ни flash об успехе, ни ошибки
	assert.NotContains(t, readBody(t, resp), "Информация пользователя обновлена.")
}

func TestAdminDeleteUserKeepsPosts(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)
	post, err := ts.repo.CreatePost("пост", "текст", user.ID)
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.postForm(t, "/admin", url.Values{
		"action":  {"delete_user"},
		"user_id": {strconv.Itoa(int(user.ID))},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Пользователь удалён.")

	// Пост не удален каскадно
	got, err := ts.repo.GetPostByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, user.ID, *got.UserID)
}

func TestAdminEditPostPartial(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)
	post, err := ts.repo.CreatePost("старый заголовок", "старый текст", user.ID)
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.postForm(t, "/admin", url.Values{
		"action":      {"edit_post"},
		"post_id":     {strconv.Itoa(int(post.ID))},
		"new_title":   {"новый заголовок"},
		"new_content": {""},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Пост обновлён.")

	got, err := ts.repo.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "новый заголовок", got.Title)
	assert.Equal(t, "старый текст", got.Content)
}

func TestAdminDeleteMissingPostIsNoop(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)
	_, err = ts.repo.CreatePost("пост", "текст", user.ID)
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.postForm(t, "/admin", url.Values{
		"action":  {"delete_post"},
		"post_id": {"9999"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	posts, err := ts.repo.GetAllPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestAdminUnknownActionIsNoop(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAdmin(t, "admin@x.com", "root")

	user, err := ts.repo.CreateUser("someone@x.com", "p1")
	require.NoError(t, err)

	ts.login(t, "admin@x.com", "root")
	resp := ts.postForm(t, "/admin", url.Values{
		"action":  {"drop_tables"},
		"user_id": {strconv.Itoa(int(user.ID))},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = ts.repo.GetUserByID(user.ID)
	assert.NoError(t, err)
}

func TestAdminFlagStaleUntilRelogin(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "bob@x.com", "p1")
	ts.login(t, "bob@x.com", "p1")

	// Повышение после входа не влияет на текущую сессию
	bob, err := ts.repo.GetUserByEmail("bob@x.com")
	require.NoError(t, err)
	require.NoError(t, ts.repo.UpdateUser(dto.UpdateUserCommand{UserID: bob.ID, MakeAdmin: true}))

	resp := ts.get(t, "/admin")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// После повторного входа флаг свежий
	ts.get(t, "/logout")
	ts.login(t, "bob@x.com", "p1")
	resp = ts.get(t, "/admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
