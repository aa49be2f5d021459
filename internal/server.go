package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
	"golang.org/x/crypto/bcrypt"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/config"
	"github.com/v-brkic/FitnessTrackingApp/internal/db"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/bodyweight"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/calc"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/photos"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/progress"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/stats"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/workouts"
	"github.com/v-brkic/FitnessTrackingApp/internal/live"
	"github.com/v-brkic/FitnessTrackingApp/internal/middleware"
	"github.com/v-brkic/FitnessTrackingApp/internal/notify"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/metrics"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

const busRetryInterval = 5 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	bus       *live.Bus
	scheduler *notify.Scheduler
	services  *services

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

// services holds everything the router needs. It is built separately from the
// connections so the routes can be exercised against mocked storage.
type services struct {
	authService *auth.Service
	progress    *progress.Repo
	workouts    *workouts.Service
	bodyweight  *bodyweight.Repo
	photos      *photos.Service
	scheduler   *notify.Scheduler
	hub         *live.Hub
	notifier    *live.Bus
	limiter     middleware.RequestRateLimiter
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	calc.SetLocation(cfg.Location())

	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: cfg.HoneycombEnabled,
	}
	if cfg.RunMigrations {
		if err := db.MigrateUp(ctx, dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitness", "service", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombEnabled, "fitness-service", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	svc := newServices(cfg, dbPool, rdb, metricsManager)

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		bus:            svc.notifier,
		scheduler:      svc.scheduler,
		services:       svc,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newServices(
	cfg *config.Config,
	dbPool db.Pool,
	rdb *redis.Client,
	metricsManager *metrics.Manager,
) *services {
	hub := live.NewHub(metricsManager)
	bus := live.NewBus(rdb, hub)

	workoutsService := workouts.NewService(
		workouts.NewRepo(dbPool),
		bus,
		metricsManager,
		workouts.ServiceParams{
			DoneExpiry: cfg.DoneExpiryDuration(),
			Location:   cfg.Location(),
		},
	)

	photosService := photos.NewService(
		photos.NewRepo(dbPool),
		bus,
		metricsManager,
		photos.ServiceParams{
			Compress: photos.CompressParams{
				MaxDimension: cfg.PhotoMaxDimension,
				MaxBytes:     cfg.PhotoMaxBytes,
				QualityStart: cfg.PhotoQualityStart,
				QualityStep:  cfg.PhotoQualityStep,
				QualityFloor: cfg.PhotoQualityFloor,
			},
			CacheMB:  cfg.PhotoCacheMB,
			Location: cfg.Location(),
		},
	)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		// sessions will not survive a restart
		log.Warnln("jwt secret not set, using a random one")
		secret, err := pkg.GenerateRandomString(32)
		if err != nil {
			log.Errorf("generate jwt secret: %s", err)
		}
		jwtSecret = secret
	}

	authService := auth.NewService(
		auth.NewUsersRepo(dbPool),
		rdb,
		auth.TokenConfig{
			Secret: jwtSecret,
			Issuer: cfg.JWTIssuer,
		},
		cfg.SessionDuration(),
		bcrypt.DefaultCost,
	)

	scheduler := notify.NewScheduler(
		notify.NewLiveSender(bus),
		metricsManager,
		notify.SchedulerParams{Location: cfg.Location()},
	)

	return &services{
		authService: authService,
		progress:    progress.NewRepo(dbPool),
		workouts:    workoutsService,
		bodyweight:  bodyweight.NewRepo(dbPool),
		photos:      photosService,
		scheduler:   scheduler,
		hub:         hub,
		notifier:    bus,
		limiter:     redis_rate.NewLimiter(rdb),
	}
}

func (svc *services) liveSources() map[live.Kind]live.Source {
	return map[live.Kind]live.Source{
		live.KindLifts: func(ctx context.Context, userID int64) (any, error) {
			return svc.progress.ListLiftSets(ctx, userID, "")
		},
		live.KindRuns: func(ctx context.Context, userID int64) (any, error) {
			return svc.progress.ListRuns(ctx, userID)
		},
		live.KindHeartRate: func(ctx context.Context, userID int64) (any, error) {
			return svc.progress.ListHeartRate(ctx, userID)
		},
		live.KindBodyweight: func(ctx context.Context, userID int64) (any, error) {
			return svc.bodyweight.List(ctx, userID)
		},
		live.KindWorkouts: func(ctx context.Context, userID int64) (any, error) {
			return svc.workouts.List(ctx, userID)
		},
		live.KindExerciseLogs: func(ctx context.Context, userID int64) (any, error) {
			return svc.workouts.Logs(ctx, userID, nil, nil)
		},
		live.KindPhotos: func(ctx context.Context, userID int64) (any, error) {
			return svc.photos.List(ctx, userID)
		},
		live.KindReminders: func(ctx context.Context, userID int64) (any, error) {
			return svc.scheduler.Snapshot(ctx, userID), nil
		},
	}
}

func routerSetup(cfg *config.Config, svc *services, metricsManager *metrics.Manager, versionInfo string) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "fitness tracking service")
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSON(w, map[string]string{"status": "ok", "version": versionInfo}, http.StatusOK)
	}).Methods("GET")

	authHandler := auth.NewHandler(svc.authService)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(svc.limiter, metricsManager, "auth", cfg.LoginRateLimitAllowedPerMin))
	authRouter.HandleFunc("/register", authHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")

	progressHandler := progress.NewHandler(svc.progress, svc.notifier, metricsManager, cfg.Location(), nil)
	r.HandleFunc("/progress/lifts", progressHandler.HandleAddLiftSet).Methods("POST", "OPTIONS").Name("add-lift-set")
	r.HandleFunc("/progress/lifts", progressHandler.HandleListLiftSets).Methods("GET", "OPTIONS").Name("list-lift-sets")
	r.HandleFunc("/progress/lifts/{id}", progressHandler.HandleDeleteLiftSet).Methods("DELETE", "OPTIONS").Name("delete-lift-set")
	r.HandleFunc("/progress/runs", progressHandler.HandleAddRun).Methods("POST", "OPTIONS").Name("add-run")
	r.HandleFunc("/progress/runs", progressHandler.HandleListRuns).Methods("GET", "OPTIONS").Name("list-runs")
	r.HandleFunc("/progress/runs/{id}", progressHandler.HandleDeleteRun).Methods("DELETE", "OPTIONS").Name("delete-run")
	r.HandleFunc("/progress/hr", progressHandler.HandleAddHeartRate).Methods("POST", "OPTIONS").Name("add-hr")
	r.HandleFunc("/progress/hr", progressHandler.HandleListHeartRate).Methods("GET", "OPTIONS").Name("list-hr")
	r.HandleFunc("/progress/hr/{id}", progressHandler.HandleDeleteHeartRate).Methods("DELETE", "OPTIONS").Name("delete-hr")
	r.HandleFunc("/progress/trend", progressHandler.HandleTrend).Methods("GET", "OPTIONS").Name("trend")
	r.HandleFunc("/progress/volume", progressHandler.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("weekly-volume")
	r.HandleFunc("/progress/bests", progressHandler.HandleBests).Methods("GET", "OPTIONS").Name("bests")

	workoutsHandler := workouts.NewHandler(svc.workouts, cfg.Location())
	r.HandleFunc("/workouts", workoutsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/rows", workoutsHandler.HandleRows).Methods("GET", "OPTIONS").Name("workout-rows")
	r.HandleFunc("/workouts/{id}/exercises/{index}/toggle-done", workoutsHandler.HandleToggleDone).Methods("POST", "OPTIONS").Name("toggle-done")
	r.HandleFunc("/exercise-logs", workoutsHandler.HandleLogs).Methods("GET", "OPTIONS").Name("exercise-logs")

	statsHandler := stats.NewHandler(svc.workouts, cfg.Location(), nil)
	r.HandleFunc("/stats", statsHandler.HandleStats).Methods("GET", "OPTIONS").Name("stats")

	bodyweightHandler := bodyweight.NewHandler(svc.bodyweight, svc.notifier, metricsManager, cfg.Location(), nil)
	r.HandleFunc("/bodyweight", bodyweightHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-bodyweight")
	r.HandleFunc("/bodyweight", bodyweightHandler.HandleList).Methods("GET", "OPTIONS").Name("list-bodyweight")
	r.HandleFunc("/bodyweight/export.csv", bodyweightHandler.HandleExportCSV).Methods("GET", "OPTIONS").Name("export-bodyweight")
	r.HandleFunc("/bodyweight/{id}", bodyweightHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-bodyweight")
	r.HandleFunc("/bodyweight/{id}", bodyweightHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-bodyweight")

	photosHandler := photos.NewHandler(svc.photos)
	r.HandleFunc("/photos", photosHandler.HandleUpload).Methods("POST", "OPTIONS").Name("upload-photo")
	r.HandleFunc("/photos", photosHandler.HandleList).Methods("GET", "OPTIONS").Name("list-photos")
	r.HandleFunc("/photos/{id}/image", photosHandler.HandleImage).Methods("GET", "OPTIONS").Name("photo-image")
	r.HandleFunc("/photos/{id}/thumbnail", photosHandler.HandleThumbnail).Methods("GET", "OPTIONS").Name("photo-thumbnail")
	r.HandleFunc("/photos/{id}", photosHandler.HandleUpdateCaption).Methods("PATCH", "OPTIONS").Name("update-photo")
	r.HandleFunc("/photos/{id}", photosHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-photo")

	remindersHandler := notify.NewHandler(svc.scheduler)
	r.HandleFunc("/reminders", remindersHandler.HandleList).Methods("GET", "OPTIONS").Name("list-reminders")
	r.HandleFunc("/reminders/once", remindersHandler.HandleScheduleOnce).Methods("POST", "OPTIONS").Name("remind-once")
	r.HandleFunc("/reminders/daily", remindersHandler.HandleScheduleDaily).Methods("POST", "OPTIONS").Name("remind-daily")
	r.HandleFunc("/reminders/{id}", remindersHandler.HandleCancel).Methods("DELETE", "OPTIONS").Name("cancel-reminder")

	liveHandler := live.NewHandler(svc.hub, svc.liveSources())
	r.HandleFunc("/live/{kind}", liveHandler.HandleStream).Methods("GET", "OPTIONS").Name("live")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	r.Use(middleware.PanicRecovery(metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(metricsManager))
	r.Use(middleware.Cors(cfg.CorsAllowedOrigins))
	r.Use(middleware.NewAuthMiddlewareHandler(svc.authService).AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := routerSetup(s.config, s.services, s.metricsManager, s.versionInfo)

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: otelhttp.NewHandler(metricsRouter, "metrics-server"),
	}

	s.scheduler.Start()
	go s.runBus(ctx)

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// runBus keeps the redis change subscription alive until ctx is done.
func (s *Server) runBus(ctx context.Context) {
	for {
		err := s.bus.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		log.Errorf("live bus stopped: %v, retrying in %s", err, busRetryInterval)
		select {
		case <-ctx.Done():
			return
		case <-time.After(busRetryInterval):
		}
	}
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	s.scheduler.Stop()

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("http server shutdown: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("metrics server shutdown: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}
