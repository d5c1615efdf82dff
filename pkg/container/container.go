package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/config"
	bookhandler "shelftrack-backend/internal/domains/book/handler"
	bookrepo "shelftrack-backend/internal/domains/book/repository"
	bookservice "shelftrack-backend/internal/domains/book/service"
	copyhandler "shelftrack-backend/internal/domains/copy/handler"
	copyrepo "shelftrack-backend/internal/domains/copy/repository"
	copyservice "shelftrack-backend/internal/domains/copy/service"
	lookuphandler "shelftrack-backend/internal/domains/lookup/handler"
	"shelftrack-backend/internal/domains/lookup/gateway/openlibrary"
	lookupservice "shelftrack-backend/internal/domains/lookup/service"
	pricinghandler "shelftrack-backend/internal/domains/pricing/handler"
	"shelftrack-backend/internal/domains/pricing/gateway/openai"
	pricingservice "shelftrack-backend/internal/domains/pricing/service"
	userhandler "shelftrack-backend/internal/domains/user/handler"
	userrepo "shelftrack-backend/internal/domains/user/repository"
	userservice "shelftrack-backend/internal/domains/user/service"
	infracache "shelftrack-backend/internal/infrastructure/cache"
	"shelftrack-backend/internal/infrastructure/database"
	"shelftrack-backend/pkg/cache"
	"shelftrack-backend/pkg/jwt"
)

// Container wires every layer of the application together. Handlers are
// public; everything the router or health endpoint needs hangs off it.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *infracache.RedisClient
	Cache cache.Cache

	JWTManager *jwt.Manager

	UserHandler    *userhandler.UserHandler
	BookHandler    *bookhandler.Handler
	CopyHandler    *copyhandler.Handler
	LookupHandler  *lookuphandler.Handler
	PricingHandler *pricinghandler.Handler
}

// New builds the full dependency graph: config, infrastructure,
// repositories, services, handlers.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	c.Redis = infracache.NewRedisClient(&cfg.Redis)
	if err := c.Redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("redis init failed: %w", err)
	}
	c.Cache = cache.NewRedisCache(c.Redis.Client)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	pool := c.DB.Pool

	userRepository := userrepo.NewUserRepository(pool)
	bookRepository := bookrepo.NewPostgresRepository(pool)
	copyRepository := copyrepo.NewPostgresRepository(pool)

	userService := userservice.NewUserService(userRepository, c.JWTManager)
	bookService := bookservice.NewService(bookRepository, c.Cache)
	copyService := copyservice.NewService(copyRepository, bookRepository, c.Cache)

	metadataProvider := openlibrary.NewClient(&cfg.Lookup)
	lookupService := lookupservice.NewService(metadataProvider, bookRepository, copyRepository, c.Cache, cfg.Lookup.CacheTTL)

	priceEstimator := openai.NewClient(&cfg.Pricing)
	pricingService := pricingservice.NewService(priceEstimator, c.Cache, cfg.Pricing.CacheTTL)

	c.UserHandler = userhandler.NewUserHandler(userService)
	c.BookHandler = bookhandler.NewHandler(bookService)
	c.CopyHandler = copyhandler.NewHandler(copyService)
	c.LookupHandler = lookuphandler.NewHandler(lookupService)
	c.PricingHandler = pricinghandler.NewHandler(pricingService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleaned up")
}
