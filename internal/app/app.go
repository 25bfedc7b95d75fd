// Package app wires repositories, services and the HTTP router for one
// storage backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"create2earn/config"
	httpHandler "create2earn/internal/adapter/http/handler"
	"create2earn/internal/adapter/storage/memory"
	pgStorage "create2earn/internal/adapter/storage/postgres"
	redisStorage "create2earn/internal/adapter/storage/redis"
	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/internal/metrics"
	"create2earn/internal/service"
	"create2earn/pkg/amount"
	"create2earn/pkg/apperror"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Backend is the set of repositories one storage driver provides.
type Backend struct {
	Tokens      ports.TokenRepository
	Balances    ports.BalanceRepository
	Allowances  ports.AllowanceRepository
	Roles       ports.RoleRepository
	Exclusions  ports.ExclusionRepository
	Taxes       ports.TaxRepository
	Transfers   ports.TransferRepository
	Idempotency ports.IdempotencyRepository
	Audit       ports.AuditRepository
	Deliveries  ports.DeliveryRepository
	Transactor  ports.DBTransactor
	Health      ports.HealthChecker
}

// PostgresBackend builds the repositories over a pgx pool.
func PostgresBackend(pool pgStorage.Pool) Backend {
	return Backend{
		Tokens:      pgStorage.NewTokenRepo(pool),
		Balances:    pgStorage.NewBalanceRepo(pool),
		Allowances:  pgStorage.NewAllowanceRepo(pool),
		Roles:       pgStorage.NewRoleRepo(pool),
		Exclusions:  pgStorage.NewExclusionRepo(pool),
		Taxes:       pgStorage.NewTaxRepo(pool),
		Transfers:   pgStorage.NewTransferRepo(pool),
		Idempotency: pgStorage.NewIdempotencyRepo(pool),
		Audit:       pgStorage.NewAuditRepo(pool),
		Deliveries:  pgStorage.NewDeliveryRepo(pool),
		Transactor:  pgStorage.NewTransactor(pool),
		Health:      pgStorage.NewHealthCheck(pool),
	}
}

// MemoryBackend builds the repositories over an in-process store.
func MemoryBackend(store *memory.Store) Backend {
	return Backend{
		Tokens:      memory.NewTokenRepo(store),
		Balances:    memory.NewBalanceRepo(store),
		Allowances:  memory.NewAllowanceRepo(store),
		Roles:       memory.NewRoleRepo(store),
		Exclusions:  memory.NewExclusionRepo(store),
		Taxes:       memory.NewTaxRepo(store),
		Transfers:   memory.NewTransferRepo(store),
		Idempotency: memory.NewIdempotencyRepo(store),
		Audit:       memory.NewAuditRepo(store),
		Deliveries:  memory.NewDeliveryRepo(store),
		Transactor:  memory.NewTransactor(store),
		Health:      memory.NewHealthCheck(),
	}
}

// Options configures New.
type Options struct {
	Config     *config.Config
	Backend    Backend
	Redis      goredis.Cmdable
	HTTPClient service.HTTPClient // nil = default client with timeout
	Logger     zerolog.Logger
}

// App holds the wired services and router.
type App struct {
	Ledger   *service.LedgerServiceImpl
	Access   *service.AccessControlServiceImpl
	Taxes    *service.TaxServiceImpl
	Auth     *service.AuthServiceImpl
	History  ports.HistoryService
	Sessions *service.JWTSessionService
	Notifier *service.NotifierService
	Metrics  *metrics.Metrics // nil when disabled
	Router   *gin.Engine
}

// New wires every service over the backend and builds the router.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	if opts.Redis == nil {
		return nil, errors.New("app: redis client is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("app: jwt.secret is required")
	}
	log := opts.Logger
	b := opts.Backend

	policy := domain.TaxPolicy{
		MaxTotalPercentage: cfg.Tax.MaxTotalPercentage,
		Compaction:         domain.CompactionMode(cfg.Tax.Compaction),
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	sigSvc := service.NewHMACSignatureService()
	notifier := service.NewNotifierService(
		cfg.Webhook.URL,
		cfg.Webhook.Secret,
		sigSvc,
		b.Deliveries,
		opts.HTTPClient,
		log.With().Str("component", "notifier").Logger(),
	)

	access := service.NewAccessControlService(b.Roles, b.Transactor, notifier, log)
	taxes := service.NewTaxService(b.Taxes, b.Exclusions, access, b.Transactor, notifier, policy, log)

	deps := service.LedgerDeps{
		Tokens:      b.Tokens,
		Balances:    b.Balances,
		Allowances:  b.Allowances,
		Roles:       b.Roles,
		Exclusions:  b.Exclusions,
		Taxes:       b.Taxes,
		Transfers:   b.Transfers,
		Idempotency: b.Idempotency,
		IdempCache:  redisStorage.NewIdempotencyCache(opts.Redis),
		Transactor:  b.Transactor,
		Events:      notifier,
		TaxPolicy:   policy,
		Logger:      log,
	}
	if m != nil {
		deps.Observer = m
		taxes.WithObserver(m)
	}
	ledger := service.NewLedgerService(deps)

	sessions := service.NewJWTSessionService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auth := service.NewAuthService(redisStorage.NewChallengeStore(opts.Redis), sessions, cfg.Auth.ChallengeTTL, log)
	history := service.NewHistoryService(b.Transfers)
	auditSvc := service.NewAuditService(b.Audit, log)

	routerDeps := httpHandler.RouterDeps{
		Ledger:         ledger,
		Access:         access,
		Taxes:          taxes,
		AuthSvc:        auth,
		History:        history,
		SessionSvc:     sessions,
		RateLimitStore: redisStorage.NewRateLimitStore(opts.Redis),
		RateLimit:      cfg.Server.RateLimit,
		HealthCheckers: []ports.HealthChecker{b.Health, redisStorage.NewHealthCheck(opts.Redis)},
		AuditSvc:       auditSvc,
		MetricsPath:    cfg.Metrics.Path,
		Logger:         log,
	}
	if m != nil {
		routerDeps.Metrics = m
	}

	return &App{
		Ledger:   ledger,
		Access:   access,
		Taxes:    taxes,
		Auth:     auth,
		History:  history,
		Sessions: sessions,
		Notifier: notifier,
		Metrics:  m,
		Router:   httpHandler.SetupRouter(routerDeps),
	}, nil
}

// DeployFromConfig deploys the token described by cfg. With skipExisting an
// already deployed token is not an error.
func (a *App) DeployFromConfig(ctx context.Context, cfg config.TokenConfig, skipExisting bool) (*domain.Token, error) {
	req, err := DeployRequest(cfg.Name, cfg.Symbol, cfg.InitialSupply, cfg.Deployer)
	if err != nil {
		return nil, err
	}
	token, err := a.Ledger.Deploy(ctx, req)
	if err != nil {
		var appErr *apperror.AppError
		if skipExisting && errors.As(err, &appErr) && appErr.Code == apperror.ErrAlreadyDeployed().Code {
			return a.Ledger.Token(ctx)
		}
		return nil, err
	}
	return token, nil
}

// DeployRequest validates constructor arguments given in whole tokens.
func DeployRequest(name, symbol, supply, deployer string) (ports.DeployRequest, error) {
	addr, err := domain.ParseAddress(deployer)
	if err != nil || domain.IsZero(addr) {
		return ports.DeployRequest{}, fmt.Errorf("deployer %q: %w", deployer, domain.ErrMalformedAddress)
	}
	units, err := amount.ParseUnits(strings.TrimSpace(supply), domain.TokenDecimals)
	if err != nil {
		return ports.DeployRequest{}, fmt.Errorf("initial supply: %w", err)
	}
	return ports.DeployRequest{
		Name:     name,
		Symbol:   symbol,
		Supply:   units,
		Deployer: addr,
	}, nil
}
