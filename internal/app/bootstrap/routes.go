// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	aboutfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/about"
	adminauthfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/adminauth"
	analyticsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/analytics"
	animalsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/animals"
	contactfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/contact"
	dashboardfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/dashboard"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	galleryfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/gallery"
	healthfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/health"
	homefeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/home"
	reviewemailsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/reviewemails"
	appresources "github.com/hoffmansreptiles/reptilecms/internal/app/resources"
	adminuserstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/adminusers"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/methodoverride"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The route map has two halves: the public site under /home, /animals,
// /gallery, /about, and /contact, and the admin console under /admin. The
// admin half carries the account routes (login, register, password reset)
// unauthenticated and everything else behind RequireAdmin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the AdminFetcher so LoadSessionAdmin fetches fresh account data
	// on each request. A deleted account loses its sessions immediately.
	sessionMgr.SetAdminFetcher(adminuserstore.NewFetcher(deps.MongoDatabase, logger))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Image saver shared by every page editor that accepts uploads.
	saver := uploads.New(deps.FileStorage)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Method override must run before routing so PUT and DELETE forms from
	// the admin editors match their routes.
	r.Use(methodoverride.Middleware)

	// Session middleware: loads SessionAdmin into context if logged in.
	// Public visitors simply have no session, which is fine.
	r.Use(sessionMgr.LoadSessionAdmin)

	// CSRF protection middleware. Cookie name is "reptilecms_csrf" to avoid
	// collisions with other services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("reptilecms_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /static/* serves embedded assets (bundled into the binary)
	r.Handle("/static/*", appresources.AssetsHandler("/static"))

	// Uploaded files (local storage only)
	// When using local storage, serve files from the configured path
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// The home page lives at /home; the bare root just forwards there.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/home", http.StatusSeeOther)
	})

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, saver, errLog, logger)
	r.Mount("/home", homefeature.Routes(homeHandler))

	animalsHandler := animalsfeature.NewHandler(deps.MongoDatabase, saver, errLog, logger)
	r.Mount("/animals", animalsfeature.Routes(animalsHandler))

	galleryHandler := galleryfeature.NewHandler(deps.MongoDatabase, saver, errLog, logger)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler))

	aboutHandler := aboutfeature.NewHandler(deps.MongoDatabase, saver, errLog, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	contactHandler := contactfeature.NewHandler(deps.MongoDatabase, deps.Mailer, appCfg.OwnerEmail, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Older versions of the site posted the contact form to /send-email.
	// Keep the URL working for cached pages and stale bookmarks.
	r.Post("/send-email", contactHandler.Send)

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// ─────────────────────────────────────────────────────────────────────────────
	// Admin console
	// ─────────────────────────────────────────────────────────────────────────────

	adminAuthHandler := adminauthfeature.NewHandler(deps.MongoDatabase, sessionMgr, deps.Mailer, appCfg.BaseURL, errLog, logger)
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	analyticsHandler := analyticsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	reviewEmailsHandler := reviewemailsfeature.NewHandler(deps.MongoDatabase, errLog, logger)

	r.Route("/admin", func(ar chi.Router) {
		// Admin pages carry account and draft content; keep them out of
		// shared caches.
		ar.Use(noStore)

		// Account lifecycle routes stay reachable without a session so
		// admins can log in, register, and recover passwords.
		adminAuthHandler.MountRoutes(ar)

		ar.Group(func(gr chi.Router) {
			gr.Use(sessionMgr.RequireAdmin)

			dashboardHandler.MountAdmin(gr)
			analyticsHandler.MountAdmin(gr)
			reviewEmailsHandler.MountAdmin(gr)

			homeHandler.MountAdmin(gr)
			animalsHandler.MountAdmin(gr)
			galleryHandler.MountAdmin(gr)
			aboutHandler.MountAdmin(gr)
			contactHandler.MountAdmin(gr)
		})
	})

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// noStore marks responses as uncacheable.
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
