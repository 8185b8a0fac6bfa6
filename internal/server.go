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

	"github.com/2beens/fitlog/internal/chat"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/visits"
	"github.com/2beens/fitlog/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	chatClient *chat.Client

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	OpenAIAPIKey            string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitlog_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitlog", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Server{
		config: params.Config,
		dbPool: dbPool,
		chatClient: chat.NewClient(
			params.Config.OpenAIBaseURL,
			params.OpenAIAPIKey,
			params.Config.ChatModel,
			tracedHttpClient,
		),
		versionInfo: params.VersionInfo,

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitlog-router"))

	workoutsService := workouts.NewService(workouts.NewRepo(s.dbPool))
	workoutsHandler := workouts.NewHandler(workoutsService, s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/batch", workoutsHandler.HandleAddBatch).Methods("POST", "OPTIONS").Name("new-workouts-batch")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-workout")

	visitsHandler := visits.NewHandler(
		visits.NewService(visits.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/visits/toggle", visitsHandler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-visit")
	r.HandleFunc("/visits/week", visitsHandler.HandleListWeek).Methods("GET", "OPTIONS").Name("list-week-visits")

	chatHandler := chat.NewHandler(workoutsService, s.chatClient, s.metricsManager)
	chatRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"coach-chat",
		s.config.ChatRateLimitAllowedPerMin,
		s.metricsManager,
	)
	chatRouter := r.PathPrefix("/chat").Subrouter()
	chatRouter.Use(chatRateLimit)
	chatRouter.HandleFunc("", chatHandler.HandleMessage).Methods("POST", "OPTIONS").Name("chat-message")
	chatRouter.HandleFunc("/suggestions", chatHandler.HandleSuggestions).Methods("POST", "OPTIONS").Name("chat-suggestions")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("failed to write version response: %s", err)
		}
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fitlog service, listen and serve: %s", err)
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
