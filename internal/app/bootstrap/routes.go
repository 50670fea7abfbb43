// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/dalemusser/coursehub/internal/app/features/admin"
	errorsfeature "github.com/dalemusser/coursehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/coursehub/internal/app/features/health"
	homefeature "github.com/dalemusser/coursehub/internal/app/features/home"
	membersfeature "github.com/dalemusser/coursehub/internal/app/features/members"
	messagesfeature "github.com/dalemusser/coursehub/internal/app/features/messages"
	resourcesfeature "github.com/dalemusser/coursehub/internal/app/features/resources"
	subscriptionsfeature "github.com/dalemusser/coursehub/internal/app/features/subscriptions"
	videosfeature "github.com/dalemusser/coursehub/internal/app/features/videos"
	"github.com/dalemusser/coursehub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Every feature shares one document store
// adapter, which may wrap a nil database.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger), nil
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	docs := deps.Docs()
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(requestID)
	if appCfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(openCORS())

	// Liveness, diagnostics, and health probes
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	healthHandler := healthfeature.NewHandler(docs, appCfg.MongoURI != "", logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Mount("/test", healthfeature.DiagnosticsRoutes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		api.Use(ratelimit.Writes(deps.WriteLimiter, func(w http.ResponseWriter, r *http.Request) {
			errLog.Write(w, r, errorsfeature.TooManyRequests("Too many requests"))
		}))

		adminHandler := adminfeature.NewHandler(docs, errLog, logger)
		api.Mount("/admin", adminfeature.Routes(adminHandler))

		membersHandler := membersfeature.NewHandler(docs, appCfg.DefaultPlan, errLog, logger)
		api.Mount("/members", membersfeature.Routes(membersHandler))

		subsHandler := subscriptionsfeature.NewHandler(docs, errLog, logger)
		api.Mount("/subscribe", subscriptionsfeature.Routes(subsHandler))

		videosHandler := videosfeature.NewHandler(docs, errLog, logger)
		api.Mount("/videos", videosfeature.Routes(videosHandler))

		resourcesHandler := resourcesfeature.NewHandler(docs, errLog, logger)
		api.Mount("/resources", resourcesfeature.Routes(resourcesHandler))

		messagesHandler := messagesfeature.NewHandler(docs, appCfg.MessagesDefaultLimit, errLog, logger)
		api.Mount("/messages", messagesfeature.Routes(messagesHandler))
	})

	return r
}

