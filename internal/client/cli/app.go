package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"eduforum/internal/client/api"
	"eduforum/internal/client/authz"
	"eduforum/internal/client/config"
	"eduforum/internal/client/repositories/credentials"
	"eduforum/internal/client/services"
	"eduforum/internal/client/session"
	"eduforum/internal/client/transport"
	"eduforum/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	forum       *api.Client
	policy      *authz.Policy
	state       *session.State
	log         logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
}

// NewApp assembles the client: local database, credential store, the
// authenticate/recover transport pipeline, the API client and the services
// on top. The session is hydrated from the store before the first prompt.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := credentials.NewSQLiteStore(db)
	state := session.NewState()

	rt := transport.NewPipeline(transport.Options{
		Store: store,
		State: state,
		Navigator: transport.NavigatorFunc(func() {
			printlnFn("Session expired, please log in again.")
		}),
		BaseURL:        cfg.ServerBaseURL,
		RefreshTimeout: cfg.RefreshTimeout,
		Logger:         log,
	})

	forum := api.NewClient(cfg.ServerBaseURL, rt, log).WithTimeout(cfg.RequestTimeout)
	as := services.NewAuthService(forum, store, state, log)

	app := &App{
		config:      cfg,
		authService: as,
		forum:       forum,
		policy:      authz.NewPolicy(),
		state:       state,
		log:         log,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
	}

	if err := as.Hydrate(ctx); err != nil {
		log.Warn(ctx, "session hydration failed", "error", err)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.state.Snapshot().Authenticated
}

// currentUser returns the authenticated user, or nil when anonymous.
func (a *App) currentUser() *session.UserSnapshot {
	return a.state.Snapshot().User
}
