package bootstrap

import (
	"database/sql"
	"log/slog"
	"net/http"

	chdriver "github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsehub/activity-feed-api/config"
	"github.com/pulsehub/activity-feed-api/internal/data"
	httpx "github.com/pulsehub/activity-feed-api/internal/http"
	"github.com/pulsehub/activity-feed-api/internal/observability/statsd"
	"github.com/pulsehub/activity-feed-api/internal/service"
)

// ServiceDeps groups the infrastructure clients the service graph needs.
type ServiceDeps struct {
	Config     *config.AppConfig
	Postgres   *sql.DB
	Mongo      *mongo.Client
	ClickHouse chdriver.Conn
	Redis      redis.UniversalClient
	Metrics    *statsd.Client
	Logger     *slog.Logger
}

// BuildHandler assembles repositories, services, and the HTTP route table.
func BuildHandler(deps *ServiceDeps) http.Handler {
	mongoDB := deps.Mongo.Database(deps.Config.Mongo.Database)

	feedRepo := data.NewMongoFeedRepo(mongoDB)
	subscriberRepo := data.NewMongoSubscriberRepo(mongoDB)
	tenantRepo := &data.TenantRepo{DB: deps.Postgres}
	runRepo := &data.WorkflowRunRepo{Conn: deps.ClickHouse}
	stepRepo := &data.StepRunRepo{Conn: deps.ClickHouse}
	traceRepo := data.NewTraceLogRepo(deps.ClickHouse, deps.Config.Feed.TraceEntityType)
	flags := data.NewRedisFlagService(deps.Redis, deps.Logger)

	enricher := service.NewTraceEnricher(service.TraceEnricherOptions{Traces: traceRepo})
	retention := service.NewRetentionService(service.RetentionServiceOptions{
		Tenants:    tenantRepo,
		SelfHosted: deps.Config.SelfHosted,
	})
	resolver := service.NewFeedResolver(service.FeedResolverOptions{
		Legacy:      feedRepo,
		Runs:        runRepo,
		Steps:       stepRepo,
		Enricher:    enricher,
		Flags:       flags,
		Logger:      deps.Logger,
		TierTimeout: deps.Config.Feed.TierTimeout,
	})
	lists := service.NewFeedListService(service.FeedListServiceOptions{
		Retention:   retention,
		Legacy:      feedRepo,
		Subscribers: subscriberRepo,
		Enricher:    enricher,
		Flags:       flags,
		Logger:      deps.Logger,
	})

	router := httpx.RouterServices{
		Feed:   &httpx.FeedHandlers{Resolver: resolver, Lists: lists},
		Logger: deps.Logger,
	}
	if deps.Metrics.Enabled() {
		router.Metrics = deps.Metrics
	}
	return httpx.NewRouter(router)
}

// NewMetricsSink builds the StatsD client when metrics emission is enabled.
// A disabled configuration yields a no-op client, never an error.
func NewMetricsSink(cfg config.MetricsConfig, logger *slog.Logger) (*statsd.Client, error) {
	return statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  "activity_feed_api",
		Logger:  logger,
	})
}
