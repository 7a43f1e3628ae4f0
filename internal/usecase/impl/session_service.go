package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aiclub/config"
	deliverycontext "aiclub/internal/delivery/context"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/domain/repository"
	"aiclub/internal/domain/service"
	"aiclub/internal/errors"
	"aiclub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity     service.IdentityProvider
	tokenService service.TokenService
	txManager    repository.TransactionManager
	roleRepo     repository.RoleRepository
	metrics      service.Metrics
	logger       *slog.Logger
	now          func() time.Time
	maxSessions  int

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	manager   *sessionManager
	expiresAt time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Lc           fx.Lifecycle
	Identity     service.IdentityProvider
	TokenService service.TokenService
	TxManager    repository.TransactionManager
	RoleRepo     repository.RoleRepository
	Metrics      service.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. Expired sessions are
// swept every session.sweepInterval while the application runs.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := newSessionService(params)

	interval := time.Minute
	if params.Config.Session != nil && params.Config.Session.SweepInterval > 0 {
		interval = params.Config.Session.SweepInterval
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go srv.sweepLoop(interval, stop, done)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			srv.closeAll()

			return nil
		},
	})

	return srv
}

func newSessionService(params SessionServiceParams) *sessionService {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	maxSessions := 0
	if params.Config != nil && params.Config.Session != nil {
		maxSessions = params.Config.Session.MaxActive
	}

	return &sessionService{
		identity:     params.Identity,
		tokenService: params.TokenService,
		txManager:    params.TxManager,
		roleRepo:     params.RoleRepo,
		metrics:      metrics,
		logger:       params.Logger,
		now:          time.Now,
		maxSessions:  maxSessions,
		sessions:     make(map[string]*sessionEntry),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open starts a session with a fresh auth client and returns its token.
// A full registry is swept first; if it is still full Open fails with ErrTooManySessions.
func (srv *sessionService) Open(ctx context.Context) (*usecase.OpenSessionOutput, error) {
	if !srv.hasCapacity(ctx) {
		srv.log(ctx).Warn("Session registry full", slog.Int("max_sessions", srv.maxSessions))

		return nil, domainerrors.ErrTooManySessions
	}

	id := uuid.NewString()

	token, err := srv.tokenService.GenerateSessionToken(id)
	if err != nil {
		return nil, errors.Wrap(err, "generate session token")
	}

	manager := newSessionManager(id, sessionManagerDeps{
		client:    srv.identity.NewAuthClient(),
		txManager: srv.txManager,
		roleRepo:  srv.roleRepo,
		metrics:   srv.metrics,
		logger:    srv.logger,
	})
	manager.Start()

	expiresAt := srv.now().Add(srv.tokenService.GetSessionTokenDuration())

	srv.mu.Lock()
	full := srv.full()
	if !full {
		srv.sessions[id] = &sessionEntry{manager: manager, expiresAt: expiresAt}
	}
	srv.mu.Unlock()

	if full {
		manager.Close()

		return nil, domainerrors.ErrTooManySessions
	}

	srv.log(ctx).Debug("Session opened", slog.String("session_id", id))

	return &usecase.OpenSessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   manager.Session(),
	}, nil
}

// Resolve validates the token and returns the live session it names.
func (srv *sessionService) Resolve(ctx context.Context, token string) (usecase.SessionManager, error) {
	id, err := srv.sessionID(token)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	entry, ok := srv.sessions[id]
	if ok && !srv.now().Before(entry.expiresAt) {
		delete(srv.sessions, id)
		ok = false
		defer entry.manager.Close()
	}
	srv.mu.Unlock()

	if !ok {
		srv.log(ctx).Debug("Unknown or expired session", slog.String("session_id", id))

		return nil, domainerrors.ErrSessionNotFound
	}

	return entry.manager, nil
}

// Release closes and forgets the session named by token.
func (srv *sessionService) Release(ctx context.Context, token string) error {
	id, err := srv.sessionID(token)
	if err != nil {
		return err
	}

	srv.mu.Lock()
	entry, ok := srv.sessions[id]
	delete(srv.sessions, id)
	srv.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	entry.manager.Close()

	srv.log(ctx).Debug("Session released", slog.String("session_id", id))

	return nil
}

// SweepExpired releases every session past its expiry.
func (srv *sessionService) SweepExpired(ctx context.Context) int {
	now := srv.now()

	srv.mu.Lock()
	var expired []*sessionManager
	for id, entry := range srv.sessions {
		if !now.Before(entry.expiresAt) {
			expired = append(expired, entry.manager)
			delete(srv.sessions, id)
		}
	}
	srv.mu.Unlock()

	for _, manager := range expired {
		manager.Close()
	}
	if len(expired) > 0 {
		srv.log(ctx).Info("Expired sessions released", slog.Int("count", len(expired)))
	}

	return len(expired)
}

// full reports whether the registry is at its cap. Callers hold mu.
func (srv *sessionService) full() bool {
	return srv.maxSessions > 0 && len(srv.sessions) >= srv.maxSessions
}

func (srv *sessionService) hasCapacity(ctx context.Context) bool {
	srv.mu.Lock()
	full := srv.full()
	srv.mu.Unlock()
	if !full {
		return true
	}

	srv.SweepExpired(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	return !srv.full()
}

func (srv *sessionService) sessionID(token string) (string, error) {
	if token == "" {
		return "", domainerrors.ErrSessionNotFound
	}
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil || claims.SessionID == "" {
		return "", domainerrors.ErrSessionNotFound
	}

	return claims.SessionID, nil
}

func (srv *sessionService) sweepLoop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			srv.SweepExpired(context.Background())
		}
	}
}

func (srv *sessionService) closeAll() {
	srv.mu.Lock()
	entries := srv.sessions
	srv.sessions = make(map[string]*sessionEntry)
	srv.mu.Unlock()

	for _, entry := range entries {
		entry.manager.Close()
	}
}
