package api

import (
	"log"

	"blog-backend/internal/app/config"
	"blog-backend/internal/app/dsn"
	"blog-backend/internal/app/handler"
	"blog-backend/internal/app/middleware"
	"blog-backend/internal/app/pkg/auth"
	"blog-backend/internal/app/repository"
	"blog-backend/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка чтения конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	sessionSvc, err := auth.NewSessionService(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logrus.Fatal("ошибка подключения к Redis: ", err)
	}
	defer sessionSvc.Close()

	jwtSvc := auth.NewJWTService(cfg.JWT.Token, cfg.JWT.ExpiresIn)

	authSvc := &middleware.AuthService{
		JWT:     jwtSvc,
		Session: sessionSvc,
	}

	h := handler.NewHandler(repo, cfg, jwtSvc, sessionSvc)

	r := gin.Default()

	app := pkg.NewApp(cfg, r, h, authSvc)
	app.RunApp()

	log.Println("Server down")
}
