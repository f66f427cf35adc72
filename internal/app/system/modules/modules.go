// Package modules loads self-registering feature modules against the admin
// menu and REST registries.
package modules

import (
	"fmt"

	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/rest"
	"go.uber.org/zap"
)

// Hooks is what a module registers itself against.
type Hooks struct {
	Menu *menu.Registry
	REST *rest.Server
}

// Module is a feature that owns its own hook registration.
type Module interface {
	Name() string
	// AdminOnly modules are skipped outside the administrative context.
	AdminOnly() bool
	Init(h Hooks) error
}

// Loader initializes modules in registration order.
type Loader struct {
	hooks Hooks
	admin bool
	log   *zap.Logger
}

// NewLoader returns a loader. admin reports whether the app runs in the
// administrative context.
func NewLoader(h Hooks, admin bool, logger *zap.Logger) *Loader {
	return &Loader{hooks: h, admin: admin, log: logger}
}

// Load initializes each module, skipping admin-only modules when not in
// the admin context. The first Init error aborts loading.
func (l *Loader) Load(mods ...Module) error {
	for _, m := range mods {
		if m.AdminOnly() && !l.admin {
			l.log.Debug("module skipped outside admin context", zap.String("module", m.Name()))
			continue
		}
		if err := m.Init(l.hooks); err != nil {
			return fmt.Errorf("init module %s: %w", m.Name(), err)
		}
		l.log.Info("module loaded", zap.String("module", m.Name()))
	}
	return nil
}
