package pkg

import (
	"fmt"

	"blog-backend/internal/app/config"
	"blog-backend/internal/app/handler"
	"blog-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
	Auth    *middleware.AuthService
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, a *middleware.AuthService) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
		Auth:    a,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	// Личность пользователя кладется в контекст на всех маршрутах
	a.Router.Use(middleware.OptionalAuthMiddleware(a.Auth))

	// Регистрируем статические файлы и маршруты
	a.Handler.RegisterStatic(a.Router)
	a.Handler.RegisterRoutes(a.Router)
	a.Handler.RegisterAPIRoutes(a.Router, a.Auth)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
