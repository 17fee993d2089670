package handler

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"certviewer/docs"
	"certviewer/internal/config"
	"certviewer/internal/http/middleware"
	"certviewer/internal/service"
	"certviewer/internal/theme"
)

// Options are the dependencies of the HTTP application.
type Options struct {
	Site          config.SiteConfig
	Theme         *theme.Theme
	Logger        *zap.Logger
	Registry      *prometheus.Registry
	DB            Pinger
	Certificates  service.CertificateService
	Introductions service.IntroductionService
	Verifier      service.Verifier
	// Tracing enables the OpenTelemetry middleware.
	Tracing bool
}

// New builds the Fiber application: views of the active theme, the global error handler,
// middleware and every route.
func New(opts Options) (*fiber.App, error) {
	if opts.Theme == nil {
		return nil, errors.New("handler: theme is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	prom, err := middleware.NewPrometheusMiddleware(opts.Registry)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "certviewer",
		Views:                 opts.Theme.Views,
		ErrorHandler:          ErrorHandler(opts.Logger),
		StrictRouting:         true,
		DisableStartupMessage: true,
	})

	if opts.Tracing {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(opts.Logger))
	app.Use(prom.Handler())
	app.Use(middleware.Recover())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(opts.Site.SecretKey),
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swaggerUI)
	if opts.Theme.Static != nil {
		app.Use("/static", staticFiles(opts.Theme.Static))
	}

	RegisterRoutes(app, opts)
	return app, nil
}

// RegisterRoutes attaches the page routes. Fixed paths are registered before the
// single segment certificate route so they are never taken for identifiers.
func RegisterRoutes(app *fiber.App, opts Options) {
	site := opts.Site

	if opts.DB != nil {
		app.Get("/health", HealthCheck(opts.DB))
	}
	app.Get("/healthz", LivenessProbe())

	app.Get("/", StaticPage(site, "index", ""))
	app.Get("/faq", StaticPage(site, "faq", "FAQ"))
	app.Get("/bitcoinkeys", StaticPage(site, "bitcoinkeys", "Issuer keys"))

	protect := csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		ContextKey:     csrfContextKey,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusForbidden).SendString("Forbidden")
		},
	})
	app.Get("/request", protect, RequestForm(site))
	app.Post("/request", protect, SubmitRequest(site, opts.Introductions))
	app.Post("/intro/", PostIntroduction(opts.Introductions))

	guard := RequireCertificateID()
	app.Get("/certificate/:"+certificateIDParam, guard, CertificateJSON(opts.Certificates))
	app.Get("/verify/:"+certificateIDParam, guard, VerifyCertificate(site, opts.Verifier))
	app.Get("/:"+certificateIDParam, guard, AwardPage(site, opts.Certificates))
}

// staticFiles serves the theme's assets. Directory hits answer like any unmatched path
// instead of 403, since listings are never served.
func staticFiles(root http.FileSystem) fiber.Handler {
	serve := filesystem.New(filesystem.Config{Root: root})
	return func(c *fiber.Ctx) error {
		err := serve(c)
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusForbidden {
			return fiber.ErrNotFound
		}
		return err
	}
}

// swaggerUI serves the API docs with the host and scheme the client used.
func swaggerUI(c *fiber.Ctx) error {
	scheme := c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	docs.SwaggerInfo.Host = c.Get("Host")
	docs.SwaggerInfo.Schemes = []string{scheme}

	return swagger.HandlerDefault(c)
}

// cookieKey derives the 32 byte encryptcookie key from the configured secret.
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
