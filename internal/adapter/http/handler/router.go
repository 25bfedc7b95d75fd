package handler

import (
	"net/http"

	"create2earn/internal/adapter/http/middleware"
	"create2earn/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter is the Prometheus side of the metrics package.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerService
	Access         ports.AccessControlService
	Taxes          ports.TaxService
	AuthSvc        ports.AuthService
	History        ports.HistoryService
	SessionSvc     ports.SessionService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	RateLimit      int                // state-changing requests per minute per client
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        MetricsExporter    // nil = metrics disabled
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	rules := middleware.DefaultRateLimitRules(deps.RateLimit)
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}
	jwt := middleware.JWTAuth(deps.SessionSvc, deps.Logger)
	read := rl(middleware.GroupRead)
	write := rl(middleware.GroupWrite)
	authed := rl(middleware.GroupAuth)

	v1 := r.Group("/api/v1")

	// --- Sign-in ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/challenge", rl(middleware.GroupSignIn), authHandler.Challenge)
	v1.POST("/auth/login", rl(middleware.GroupSignIn), authHandler.Login)

	// --- Token ---
	tokenHandler := NewTokenHandler(deps.Ledger)
	historyHandler := NewHistoryHandler(deps.History)
	v1.GET("/token", read, tokenHandler.GetToken)
	v1.GET("/balances/:address", read, tokenHandler.BalanceOf)
	v1.GET("/allowances/:owner/:spender", read, tokenHandler.Allowance)
	v1.POST("/transfers", jwt, write, tokenHandler.Transfer)
	v1.POST("/transfers/from", jwt, write, tokenHandler.TransferFrom)
	v1.POST("/approvals", jwt, write, tokenHandler.Approve)
	v1.GET("/transfers", jwt, authed, historyHandler.ListTransfers)
	v1.GET("/transfers/:id", jwt, authed, historyHandler.GetTransfer)

	// --- Access control ---
	roleHandler := NewRoleHandler(deps.Access)
	v1.GET("/roles", read, roleHandler.ListRoles)
	v1.GET("/roles/:role/members", read, roleHandler.Members)
	v1.GET("/roles/:role/members/:account", read, roleHandler.HasRole)
	v1.POST("/roles/:role/grant", jwt, write, roleHandler.Grant)
	v1.POST("/roles/:role/revoke", jwt, write, roleHandler.Revoke)
	v1.POST("/roles/:role/renounce", jwt, write, roleHandler.Renounce)

	// --- Fee exclusion & tax registry ---
	taxHandler := NewTaxHandler(deps.Taxes)
	v1.POST("/exclusions", jwt, write, taxHandler.Exclude)
	v1.DELETE("/exclusions/:address", jwt, write, taxHandler.Include)
	v1.GET("/exclusions/:address", read, taxHandler.Excluded)

	v1.GET("/taxes", read, taxHandler.List)
	v1.GET("/taxes/last", read, taxHandler.Last)
	v1.GET("/taxes/stats", jwt, authed, historyHandler.Stats)
	v1.GET("/taxes/:id", read, taxHandler.Get)
	v1.POST("/taxes", jwt, write, taxHandler.Add)
	v1.DELETE("/taxes/:id", jwt, write, taxHandler.Remove)
	v1.PUT("/taxes/:id/percentage", jwt, write, taxHandler.SetValue)
	v1.PUT("/taxes/:id/recipient", jwt, write, taxHandler.SetRecipient)

	return r
}
