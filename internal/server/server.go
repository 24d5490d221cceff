package server

import (
	"log/slog"
	"time"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/config"
	"github.com/nfrund/hireboard/internal/handlers"
	"github.com/nfrund/hireboard/internal/middleware"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/pubsub"
	"github.com/nfrund/hireboard/internal/rendering"
	"github.com/nfrund/hireboard/internal/session"
	"github.com/nfrund/hireboard/internal/uploads"
	"github.com/nfrund/hireboard/internal/workspace"
	"github.com/nfrund/hireboard/web"
	"github.com/samber/do/v2"
)

// busBuffer is how many notices may queue for a slow subscriber.
const busBuffer = 64

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	injector *do.RootScope
	logger   *slog.Logger
}

// New wires the console. Services are built lazily by the injector the
// first time a route or background task needs them.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.Provide(injector, provideAPIClient)
	do.Provide(injector, provideBus)
	do.Provide(injector, provideNotifier)
	do.Provide(injector, provideFeed)
	do.Provide(injector, provideWorkspaces)
	do.Provide(injector, provideStager)
	do.Provide(injector, provideConsole)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = session.Options(cfg.CookieSecure, int(cfg.SessionMaxAge/time.Second))
	e.Use(echosession.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{E: e, Cfg: cfg, injector: injector, logger: logger}
}

func provideAPIClient(i do.Injector) (*apiclient.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return apiclient.New(cfg.APIBaseURL, apiclient.WithTimeout(cfg.RequestTimeout))
}

func provideBus(i do.Injector) (*pubsub.Bus, error) {
	return pubsub.NewBus(do.MustInvoke[*slog.Logger](i), busBuffer), nil
}

func provideNotifier(i do.Injector) (*notify.Publisher, error) {
	return notify.NewPublisher(do.MustInvoke[*pubsub.Bus](i), do.MustInvoke[*slog.Logger](i)), nil
}

func provideFeed(i do.Injector) (*notify.Feed, error) {
	return notify.NewFeed(do.MustInvoke[*config.Config](i).FeedSize), nil
}

func provideWorkspaces(i do.Injector) (*workspace.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return workspace.NewRegistry(do.MustInvoke[*slog.Logger](i), workspace.WithIdle(cfg.SessionIdle)), nil
}

func provideStager(i do.Injector) (*uploads.Stager, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return uploads.NewStager(uploads.NewDiskStore(cfg.UploadDir), uploads.DefaultMaxSize), nil
}

func provideConsole(i do.Injector) (*handlers.Console, error) {
	return &handlers.Console{
		API:      do.MustInvoke[*apiclient.Client](i),
		Spaces:   do.MustInvoke[*workspace.Registry](i),
		Notifier: do.MustInvoke[*notify.Publisher](i),
		PageSize: do.MustInvoke[*config.Config](i).PageSize,
	}, nil
}
