// Package app wires the client's dependencies into a runnable whole: the
// encrypted vault, the two HTTP clients, the API services and the session
// store.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eprometna/client-go/internal/client/authapi"
	"github.com/eprometna/client-go/internal/client/deviceinfo"
	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/internal/client/session"
	"github.com/eprometna/client-go/internal/client/userapi"
	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/eprometna/client-go/internal/client/vault/drivers/memory"
	"github.com/eprometna/client-go/internal/client/vault/drivers/sqlite"
	"github.com/eprometna/client-go/internal/client/vehicleapi"
	"github.com/eprometna/client-go/pkg/apix"
	"github.com/eprometna/client-go/pkg/cryptox"
	"github.com/eprometna/client-go/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application holds the fully wired client.
type Application struct {
	cfg    Config
	logger *slog.Logger

	vault vault.Vault

	bootstrap *apix.Client
	authed    *apix.Client

	AuthService    *authapi.Service
	UserService    *userapi.Service
	VehicleService *vehicleapi.Service
	Session        *session.Store
}

// New builds the application from configuration. The authenticated client's
// unauthorized hook forces a local logout, so the closure is bound late,
// after the session store exists.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "eprometna-client",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initVault(); err != nil {
		return nil, err
	}

	app.initClients()
	app.initServices()

	return app, nil
}

// BaseURL reports the resolved backend base URL.
func (app *Application) BaseURL() string {
	return app.bootstrap.BaseURL
}

// Ping checks backend reachability. Any HTTP response counts as reachable;
// only transport failures do not.
func (app *Application) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.bootstrap.BaseURL, nil)
	if err != nil {
		return err
	}

	resp, err := app.bootstrap.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

// Close releases the vault's resources.
func (app *Application) Close() error {
	return app.vault.Close()
}

func (app *Application) initVault() error {
	if app.cfg.Vault.Driver == "memory" {
		app.vault = memory.New()
		return nil
	}

	cipher, err := cryptox.NewValueCipherFromFile(app.cfg.Vault.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to initialize vault cipher: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", app.cfg.Vault.Path)
	store, err := sqlite.New(dsn, cipher, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	app.vault = store

	return nil
}

func (app *Application) initClients() {
	baseURL := app.cfg.API.BaseURL
	if baseURL == "" {
		baseURL = apix.ResolveBaseURL(apix.ResolveOptions{
			Dev:        app.cfg.API.Dev,
			Platform:   app.cfg.API.Platform,
			DebugHost:  app.cfg.API.DebugHost,
			LanIP:      app.cfg.API.LanIP,
			EmulatorIP: app.cfg.API.EmulatorIP,
		})
	}

	app.bootstrap = apix.NewBootstrap(baseURL)
	app.authed = apix.NewAuthenticated(baseURL, vault.Credentials{Vault: app.vault}, func(ctx context.Context) {
		// Session is wired after the clients; a 401 can only arrive once a
		// request has gone out, well after initServices ran.
		app.Session.ForceLogout(ctx)
	})
}

func (app *Application) initServices() {
	app.AuthService = &authapi.Service{
		Bootstrap: app.bootstrap,
		Authed:    app.authed,
		Logger:    app.logger,
	}
	app.UserService = &userapi.Service{Client: app.authed}
	app.VehicleService = vehicleapi.NewService(app.authed)

	app.Session = session.NewStore(
		app.vault,
		app.AuthService,
		app.UserService,
		func() domain.DeviceInfo {
			return deviceinfo.Collect(BuildVersion, BuildVersion)
		},
		app.logger,
	)
}
