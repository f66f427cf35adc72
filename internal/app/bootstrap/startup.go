// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/sfshr/internal/app/resources"
	userstore "github.com/dalemusser/sfshr/internal/app/store/users"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Short: appCfg.TimeoutShort, Medium: appCfg.TimeoutMedium})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium))

	resources.LoadSharedTemplates()

	if appCfg.BootstrapAdminLogin != "" {
		if err := ensureAdmin(ctx, deps.MongoDatabase, appCfg.BootstrapAdminLogin, appCfg.BootstrapAdminPassword, logger); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}
	return nil
}

// adminCapabilities are granted to the bootstrap admin.
var adminCapabilities = []string{authz.CapRead, authz.CapManage, authz.CapAttendanceAdmin}

// ensureAdmin creates the bootstrap admin, or grants the admin
// capabilities when the login id already exists.
func ensureAdmin(ctx context.Context, db *mongo.Database, loginID, password string, logger *zap.Logger) error {
	store := userstore.New(db)

	existing, err := store.GetByLoginID(ctx, loginID)
	switch {
	case err == nil:
		if err := store.GrantCapabilities(ctx, existing.ID, adminCapabilities...); err != nil {
			return err
		}
		logger.Info("bootstrap admin capabilities ensured", zap.String("login_id", existing.LoginID))
		return nil
	case !errors.Is(err, mongo.ErrNoDocuments):
		return err
	}

	if password == "" {
		return errors.New("bootstrap_admin_password is required to create the bootstrap admin")
	}
	u, err := store.Create(ctx, userstore.NewUser{
		LoginID:      loginID,
		FullName:     "Administrator",
		Password:     password,
		Capabilities: adminCapabilities,
	})
	if err != nil {
		return err
	}
	logger.Info("bootstrap admin created", zap.String("login_id", u.LoginID), zap.String("user_id", u.ID.Hex()))
	return nil
}
