package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Tailor/internal/auth"
	"Tailor/internal/calc/batch"
	"Tailor/internal/calc/catalog"
	"Tailor/internal/calc/frill"
	"Tailor/internal/calc/importer"
	"Tailor/internal/calc/pythagorean"
	"Tailor/internal/calc/ratio"
	"Tailor/internal/calc/report"
	"Tailor/internal/calc/skirt"
	"Tailor/internal/config"
	"Tailor/internal/logging"
	"Tailor/internal/repo"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HandleList mounts every route. accounts may be nil, in which case the
// login-only tools are not served.
func HandleList(router *mux.Router, cfg *config.Config, accounts *auth.Env) {
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	catalogH := &catalog.Handler{}
	skirtH := &skirt.Handler{}
	frillH := &frill.Handler{}
	ratioH := &ratio.Handler{}
	pythagoreanH := &pythagorean.Handler{}
	batchH := &batch.Handler{}

	api.HandleFunc("/tools", catalogH.List).Methods("GET")
	api.HandleFunc("/tools/{kind}", catalogH.Get).Methods("GET")
	api.HandleFunc("/tools/skirt/calc", skirtH.Calc).Methods("POST")
	api.HandleFunc("/tools/frill/calc", frillH.Calc).Methods("POST")
	api.HandleFunc("/tools/ratio/calc", ratioH.Calc).Methods("POST")
	api.HandleFunc("/tools/pythagorean/calc", pythagoreanH.Calc).Methods("POST")
	api.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")

	if accounts != nil {
		api.HandleFunc("/login", accounts.LoginHandler).Methods("POST")
		api.HandleFunc("/register", accounts.RegisterHandler).Methods("POST")
		api.HandleFunc("/logout", accounts.LogoutHandler).Methods("POST")

		secureApi := api.PathPrefix("/user").Subrouter()
		secureApi.Use(accounts.Middleware)

		reportH := &report.Handler{}
		importerH := &importer.Handler{}
		secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
		secureApi.HandleFunc("/tools/import/xlsx", importerH.Upload).Methods("POST")
	}

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	var accounts *auth.Env
	if cfg.AccountsEnabled() {
		db, err := auth.InitDB(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		users := repo.NewPostgresUserDB(db)
		if err := users.EnsureSchema(ctx); err != nil {
			return err
		}
		accounts = &auth.Env{JWTKey: []byte(cfg.TokenKey), Repo: users, Log: logger.Named("auth")}
	} else {
		logger.Warn("DATABASE_URL is not set, accounts, reports and imports are disabled")
	}

	router := mux.NewRouter()
	HandleList(router, cfg, accounts)
	handler := logging.Middleware(logger)(CORS(router))

	server := &http.Server{
		Addr:     cfg.Address,
		Handler:  handler,
		ErrorLog: zap.NewStdLog(logger.Named("server")),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", zap.String("addr", cfg.Address), zap.Bool("tls", cfg.TLSEnabled()))
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	logger.Info("server stopped")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		cancel()
		logger.Sync()
		os.Exit(1)
	}
}
