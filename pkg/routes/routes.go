package pkg

import (
	"ClassBoard/internal/announcement"
	"ClassBoard/internal/config"
	"ClassBoard/internal/teacher"
	"ClassBoard/pkg/middleware"
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(teacher.NewTeacherRepository),
	fx.Provide(func(r *teacher.TeacherRepository) teacher.Store { return r }),
	fx.Provide(teacher.NewTeacherService),
	fx.Provide(func(s *teacher.TeacherService) announcement.Authorizer { return s }),
	fx.Provide(func(r *teacher.TeacherRepository) announcement.TeacherDirectory { return r }),
	fx.Provide(announcement.NewAnnouncementRepository),
	fx.Provide(func(r *announcement.AnnouncementRepository) announcement.Store { return r }),
	fx.Provide(announcement.NewNotifier),
	fx.Provide(announcement.NewAnnouncementService),
	fx.Provide(announcement.NewAnnouncementHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server running on http://localhost:" + port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(e *echo.Echo, announcementHandler *announcement.AnnouncementHandler) {
	announcements := e.Group("/announcements")
	announcements.GET("", announcementHandler.ListActive)
	announcements.GET("/all", announcementHandler.ListAll)
	announcements.POST("", announcementHandler.Create)
	announcements.PUT("/:id", announcementHandler.Update)
	announcements.DELETE("/:id", announcementHandler.Delete)
}
