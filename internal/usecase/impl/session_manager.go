package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/lifecycle"
	"aiclub/internal/domain/repository"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/usecase"
)

// sessionManager implements usecase.SessionManager for one client.
// mu guards state and gen only; it is never held while calling the auth
// client or the store.
type sessionManager struct {
	client    service.AuthClient
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	metrics   service.Metrics
	logger    *slog.Logger
	now       func() time.Time
	// resolve runs role lookups triggered by auth-state changes.
	resolve func(fn func())

	mu    sync.Mutex
	state entity.Session
	// gen increases on every identity change so stale role lookups are dropped.
	gen uint64

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

type sessionManagerDeps struct {
	client    service.AuthClient
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	metrics   service.Metrics
	logger    *slog.Logger
	now       func() time.Time
	resolve   func(fn func())
}

func newSessionManager(id string, deps sessionManagerDeps) *sessionManager {
	if deps.metrics == nil {
		deps.metrics = service.NopMetrics{}
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.resolve == nil {
		deps.resolve = func(fn func()) { go fn() }
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &sessionManager{
		client:    deps.client,
		txManager: deps.txManager,
		roleRepo:  deps.roleRepo,
		metrics:   deps.metrics,
		logger:    deps.logger.With(slog.String("session_id", id)),
		now:       deps.now,
		resolve:   deps.resolve,
		state:     entity.NewSession(id),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (m *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Start subscribes to auth-state changes of the client.
func (m *sessionManager) Start() {
	unsubscribe := m.client.OnAuthStateChanged(m.onAuthStateChanged)

	m.mu.Lock()
	m.unsubscribe = unsubscribe
	m.mu.Unlock()
}

// Close stops listening and cancels pending role lookups.
func (m *sessionManager) Close() {
	m.cancel()

	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Session returns a copy of the current state.
func (m *sessionManager) Session() entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneSession(m.state)
}

func (m *sessionManager) onAuthStateChanged(identity *entity.Identity) {
	m.mu.Lock()
	m.gen++
	gen := m.gen

	if identity == nil {
		m.state.Identity = nil
		m.state.IsAdmin = false
		m.state.Loading = false
		m.mu.Unlock()

		return
	}

	if current := m.state.Identity; current != nil && current.UID == identity.UID && !m.state.Loading {
		// Same user reported again; the role is already known.
		m.mu.Unlock()

		return
	}
	m.state.Identity = identity
	m.state.IsAdmin = false
	m.state.Loading = true
	m.mu.Unlock()

	uid := identity.UID
	m.resolve(func() { m.resolveRole(gen, uid) })
}

// resolveRole reads the role record of uid without creating it.
func (m *sessionManager) resolveRole(gen uint64, uid string) {
	ctx, cancel := context.WithTimeout(m.ctx, lifecycle.DefaultTimeout)
	defer cancel()

	isAdmin := false
	record, err := m.roleRepo.FindByUID(ctx, uid)
	switch {
	case err == nil:
		isAdmin = record.IsAdmin()
	case errors.Is(err, repository.ErrRoleRecordNotFound):
	default:
		m.logger.Error("Failed to resolve role", slog.String("uid", uid), slog.Any("error", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gen != gen {
		return
	}
	m.state.IsAdmin = isAdmin
	m.state.Loading = false
}

// Login signs in, reads or lazily creates the role record and rejects non-admins.
func (m *sessionManager) Login(ctx context.Context, input usecase.LoginInput) (entity.Session, error) {
	email := strings.TrimSpace(input.Email)
	if verr := validateLoginInput(email, input.Password); verr != nil {
		m.metrics.LoginAttempt(verr.ErrorCode())

		return entity.Session{}, verr
	}

	// A new login replaces whatever identity the session held. The session is
	// cleared even when the provider sign-out fails.
	if m.client.CurrentUser() != nil {
		if err := m.client.SignOut(ctx); err != nil {
			m.clear()
			m.metrics.LoginAttempt(outcomeOf(err))
			m.log(ctx).Error("Failed to sign out previous identity", slog.Any("error", err))

			return entity.Session{}, errors.Wrap(err, "sign out previous identity")
		}
	}

	identity, err := m.client.SignIn(ctx, email, input.Password)
	if err != nil {
		m.clear()
		m.metrics.LoginAttempt(outcomeOf(err))
		m.log(ctx).Info("Login rejected", slog.String("email", email), slog.Any("error", err))

		return entity.Session{}, err
	}

	record, err := m.findOrCreateRoleRecord(ctx, identity.UID)
	if err != nil {
		m.abortLogin(ctx)
		m.metrics.LoginAttempt(outcomeOf(err))

		return entity.Session{}, err
	}

	if !record.IsAdmin() {
		m.abortLogin(ctx)
		m.metrics.LoginAttempt(domainerrors.ErrAdminRequired.ErrorCode())
		m.log(ctx).Warn("Non-admin login rejected", slog.String("uid", identity.UID))

		return entity.Session{}, domainerrors.ErrAdminRequired
	}

	m.mu.Lock()
	m.gen++
	m.state.Identity = identity
	m.state.IsAdmin = true
	m.state.Loading = false
	session := cloneSession(m.state)
	m.mu.Unlock()

	m.metrics.LoginAttempt("ok")
	m.log(ctx).Info("Admin logged in", slog.String("uid", identity.UID))

	return session, nil
}

func validateLoginInput(email, password string) *domainerrors.ValidationError {
	verr := &domainerrors.ValidationError{}
	if email == "" {
		verr.Missing = append(verr.Missing, "email")
	}
	if password == "" {
		verr.Missing = append(verr.Missing, "password")
	}
	if verr.Empty() {
		return nil
	}

	return verr
}

func (m *sessionManager) findOrCreateRoleRecord(ctx context.Context, uid string) (*entity.UserRoleRecord, error) {
	var record *entity.UserRoleRecord
	err := m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		roleRepo := factory.RoleRepo()

		found, err := roleRepo.FindByUID(ctx, uid)
		if err == nil {
			record = found

			return nil
		}
		if !errors.Is(err, repository.ErrRoleRecordNotFound) {
			return errors.Wrap(err, "find role record")
		}

		created := entity.NewUserRoleRecord(uid, m.now())
		if err := roleRepo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "create role record")
		}
		record = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// abortLogin reverses a successful sign-in. It runs even when ctx is cancelled.
func (m *sessionManager) abortLogin(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := m.client.SignOut(ctx); err != nil {
		m.log(ctx).Error("Failed to sign out after rejected login", slog.Any("error", err))
	}
	m.clear()
}

func (m *sessionManager) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.state.Identity = nil
	m.state.IsAdmin = false
	m.state.Loading = false
}

// Logout signs out and clears the session. A provider failure leaves the state untouched.
func (m *sessionManager) Logout(ctx context.Context) error {
	if err := m.client.SignOut(ctx); err != nil {
		return errors.Wrap(err, "sign out")
	}
	m.clear()

	m.log(ctx).Info("Logged out")

	return nil
}

// SetUserRole upserts the role record of uid to exactly {role}.
func (m *sessionManager) SetUserRole(ctx context.Context, uid string, role entity.Role) error {
	if !m.Session().IsAdmin {
		return domainerrors.ErrPermissionDenied
	}

	uid = strings.TrimSpace(uid)
	verr := &domainerrors.ValidationError{}
	if uid == "" {
		verr.Missing = append(verr.Missing, "uid")
	}
	if !role.IsValid() {
		verr.Invalid = map[string]string{"role": string(role)}
	}
	if !verr.Empty() {
		return verr
	}

	now := m.now()
	err := m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		roleRepo := factory.RoleRepo()

		record, err := roleRepo.FindByUID(ctx, uid)
		if errors.Is(err, repository.ErrRoleRecordNotFound) {
			record = entity.NewUserRoleRecord(uid, now)
			record.Roles = entity.Roles{role}

			return errors.Wrap(roleRepo.Create(ctx, record), "create role record")
		}
		if err != nil {
			return errors.Wrap(err, "find role record")
		}

		record.Roles = entity.Roles{role}
		record.UpdatedAt = now

		return errors.Wrap(roleRepo.Save(ctx, record), "save role record")
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.state.Identity != nil && m.state.Identity.UID == uid {
		m.state.IsAdmin = role == entity.RoleAdmin
	}
	m.mu.Unlock()

	m.log(ctx).Info("User role updated", slog.String("uid", uid), slog.String("role", role.String()))

	return nil
}

func cloneSession(s entity.Session) entity.Session {
	if s.Identity != nil {
		identity := *s.Identity
		s.Identity = &identity
	}

	return s
}

// outcomeOf labels a login failure for metrics.
func outcomeOf(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.ErrorCode()
	}

	return "error"
}
