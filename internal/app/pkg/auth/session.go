package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionData хранит привязку браузерной сессии к пользователю.
// IsAdmin фиксируется в момент входа и не обновляется до конца сессии.
type SessionData struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
}

// FlashMessage одноразовое сообщение, показывается на следующей
// отрисованной странице
type FlashMessage struct {
	Category string `json:"category"` // success, danger, warning, info
	Message  string `json:"message"`
}

// SessionService управляет сессиями и flash-сообщениями в Redis
type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionService создает новый сервис сессий
func NewSessionService(host string, port int, password string, db int) (*SessionService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &SessionService{
		client: client,
		ttl:    24 * time.Hour, // сессия живет 24 часа
	}, nil
}

// Create создает новую сессию
func (s *SessionService) Create(ctx context.Context, sessionID string, data SessionData) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, "session:"+sessionID, jsonData, s.ttl).Err()
}

// Get получает данные сессии
func (s *SessionService) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.client.Get(ctx, "session:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil // сессия не найдена
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// Delete удаляет сессию
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, "session:"+sessionID).Err()
}

// Extend продлевает время жизни сессии
func (s *SessionService) Extend(ctx context.Context, sessionID string) error {
	return s.client.Expire(ctx, "session:"+sessionID, s.ttl).Err()
}

// AddFlash добавляет flash-сообщение для браузера sessionID
func (s *SessionService) AddFlash(ctx context.Context, sessionID, category, message string) error {
	flashes, err := s.getFlashes(ctx, sessionID)
	if err != nil {
		return err
	}
	flashes = append(flashes, FlashMessage{Category: category, Message: message})

	jsonData, err := json.Marshal(flashes)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, "flash:"+sessionID, jsonData, s.ttl).Err()
}

// PopFlashes возвращает накопленные flash-сообщения и удаляет их
func (s *SessionService) PopFlashes(ctx context.Context, sessionID string) ([]FlashMessage, error) {
	flashes, err := s.getFlashes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := s.client.Del(ctx, "flash:"+sessionID).Err(); err != nil {
		return nil, err
	}
	return flashes, nil
}

func (s *SessionService) getFlashes(ctx context.Context, sessionID string) ([]FlashMessage, error) {
	val, err := s.client.Get(ctx, "flash:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var flashes []FlashMessage
	if err := json.Unmarshal([]byte(val), &flashes); err != nil {
		return nil, err
	}
	return flashes, nil
}

// Close закрывает соединение с Redis
func (s *SessionService) Close() error {
	return s.client.Close()
}
