package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/config"
	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/repository"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/mailer"
)

// Process-wide components shared with the router. Set once at startup;
// nil entries disable the feature that depends on them.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	objectStore application.ObjectStore
	jwtManager  *helpers.JWTManager
	publisher   mailer.Publisher
	esClient    *elasticsearch.Client
	userRepo    repository.UserRepository
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		c := GetConfig()
		logger = helpers.NewLogger(c.AppName, c.Env, c.LogLevel)
	}
	return logger
}

func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool  { return pgPool }
func SetRedis(r *redis.Client)  { redisClient = r }
func GetRedis() *redis.Client   { return redisClient }

func SetObjectStore(s application.ObjectStore) { objectStore = s }
func GetObjectStore() application.ObjectStore  { return objectStore }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager == nil {
		c := GetConfig()
		jwtManager = helpers.NewJWTManager(c.JWTAccessSecret, c.JWTRefreshSecret, c.AccessTTL, c.RefreshTTL)
	}
	return jwtManager
}

func SetPublisher(p mailer.Publisher) { publisher = p }
func GetPublisher() mailer.Publisher  { return publisher }
func SetES(c *elasticsearch.Client)   { esClient = c }
func GetES() *elasticsearch.Client    { return esClient }

// SetUserRepo overrides the Postgres repository, e.g. with an in-memory one.
func SetUserRepo(r repository.UserRepository) { userRepo = r }
func GetUserRepo() repository.UserRepository  { return userRepo }

// Reset clears every component.
func Reset() {
	cfg, logger, pgPool, redisClient = nil, nil, nil, nil
	objectStore, jwtManager, publisher, esClient, userRepo = nil, nil, nil, nil, nil
}
