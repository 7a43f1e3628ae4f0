package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aiclub/config"
	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"

	"go.uber.org/fx"
)

// RoleBootstrapParams holds dependencies for BootstrapAdmins, injected by Fx.
type RoleBootstrapParams struct {
	fx.In

	Lc        fx.Lifecycle
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// BootstrapAdmins grants the admin role to bootstrap.adminUids when the
// application starts, so a first admin can log in.
func BootstrapAdmins(params RoleBootstrapParams) {
	if params.Config.Bootstrap == nil || len(params.Config.Bootstrap.AdminUIDs) == 0 {
		return
	}

	uids := params.Config.Bootstrap.AdminUIDs
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			granted, err := grantAdmin(ctx, params.TxManager, uids, time.Now())
			if err != nil {
				return err
			}
			params.Logger.Info("Bootstrap admins ensured",
				slog.Int("configured", len(uids)),
				slog.Int("granted", granted),
			)

			return nil
		},
	})
}

// grantAdmin makes sure every uid holds the admin role and returns how many records changed.
func grantAdmin(ctx context.Context, txManager repository.TransactionManager, uids []string, now time.Time) (int, error) {
	granted := 0
	for _, uid := range uids {
		uid = strings.TrimSpace(uid)
		if uid == "" {
			continue
		}

		changed := false
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			roleRepo := factory.RoleRepo()
			changed = false

			record, err := roleRepo.FindByUID(ctx, uid)
			if errors.Is(err, repository.ErrRoleRecordNotFound) {
				record = entity.NewUserRoleRecord(uid, now)
				record.Roles = entity.Roles{entity.RoleAdmin}
				changed = true

				return roleRepo.Create(ctx, record)
			}
			if err != nil {
				return err
			}
			if record.IsAdmin() {
				return nil
			}

			record.Roles = entity.Roles{entity.RoleAdmin}
			record.UpdatedAt = now
			changed = true

			return roleRepo.Save(ctx, record)
		})
		if err != nil {
			return granted, errors.Wrapf(err, "grant admin to %s", uid)
		}
		if changed {
			granted++
		}
	}

	return granted, nil
}
