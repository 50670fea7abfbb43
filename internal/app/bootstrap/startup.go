// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"strings"

	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	}, logger)

	if appCfg.AdminEmail != "" {
		if deps.MongoDatabase == nil {
			logger.Warn("admin_email set but no database configured; skipping admin bootstrap")
			return nil
		}
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin promotes the configured email to admin, creating the member
// when it does not exist yet.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}

	changed, err := memberstore.New(deps.Docs()).EnsureAdmin(ctx, name, email)
	if err != nil {
		logger.Error("admin bootstrap failed", zap.String("email", email), zap.Error(err))
		return err
	}
	if changed {
		logger.Info("admin member ensured", zap.String("email", email))
	}
	return nil
}
