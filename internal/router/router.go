package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/goal"
	"github.com/grouptivate/grouptivate-api/internal/group"
	"github.com/grouptivate/grouptivate-api/internal/invite"
	"github.com/grouptivate/grouptivate-api/internal/middlewares"
	"github.com/grouptivate/grouptivate-api/internal/user"
)

type RouterConfig struct {
	UserHandler   *user.Handler
	GroupHandler  *group.Handler
	GoalHandler   *goal.Handler
	InviteHandler *invite.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/user", cfg.UserHandler.Register)
	r.Post("/user/login", cfg.UserHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		// Method routes, not a mount: a mount on /user would claim every
		// method on that node and shadow the public POST /user above.
		r.Get("/user", cfg.UserHandler.GetUser)
		r.Post("/user/verify", cfg.UserHandler.Verify)
		r.Get("/groups", cfg.GroupHandler.List)

		r.Route("/group", func(r chi.Router) {
			r.Mount("/invite", invite.Routes(cfg.InviteHandler))
			r.Mount("/goal", goal.Routes(cfg.GoalHandler))

			r.Post("/", cfg.GroupHandler.Create)
			r.Get("/", cfg.GroupHandler.Get)
			r.Post("/remove", cfg.GroupHandler.Remove)
		})
	})

	return r
}
