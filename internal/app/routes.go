package app

import (
	"sgc/internal/auth"
	"sgc/internal/config"
	"sgc/internal/handlers"
	"sgc/internal/repo"
	"sgc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, sessions auth.SessionStore) error {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	usuarioSvc, contratoSvc, err := NewServices(cfg, db)
	if err != nil {
		return err
	}
	registerAPI(r.Group("/api/v1"), cfg.Session, sessions, usuarioSvc, contratoSvc)
	return nil
}

// registerAPI mounts the auth, usuario and contrato routes on api. Only the
// login form, login and logout are reachable without a session.
func registerAPI(api *gin.RouterGroup, sess config.SessionConfig, sessions auth.SessionStore, usuarioSvc *service.UsuarioService, contratoSvc *service.ContratoService) {
	authenticator := auth.NewAuthenticator(sessions, usuarioSvc)
	authHandler := handlers.NewAuthHandler(authenticator, sess.TTL.Duration(), sess.SecureCookie)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(authenticator))
	protected.GET("/auth/me", authHandler.Me)
	registerUsuarioRoutes(protected, handlers.NewUsuarioHandler(usuarioSvc))
	registerContratoRoutes(protected, handlers.NewContratoHandler(contratoSvc))
}

// NewServices builds the usuario and contrato services over db, honoring
// PASSWORD_MODE and USUARIO_DELETE_POLICY.
func NewServices(cfg config.Config, db *pgxpool.Pool) (*service.UsuarioService, *service.ContratoService, error) {
	verifier, err := service.NewPasswordVerifier(cfg.App.PasswordMode)
	if err != nil {
		return nil, nil, err
	}
	usuarioSvc := service.NewUsuarioService(repo.NewPGUsuarioRepo(db), verifier)
	contratoSvc := service.NewContratoService(repo.NewPGContratoRepo(db))
	if cfg.App.UsuarioDeletePolicy == "cascade" {
		usuarioSvc.CascadeTo(contratoSvc)
	}
	return usuarioSvc, contratoSvc, nil
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "SGC API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"metrics": "/metrics",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.GET("/auth/login", h.LoginForm)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
}

func registerUsuarioRoutes(api *gin.RouterGroup, h *handlers.UsuarioHandler) {
	api.GET("/usuarios", h.List)
	api.POST("/usuarios", h.Create)
	api.GET("/usuarios/:username", h.Get)
	api.PUT("/usuarios/:username", h.Update)
	api.DELETE("/usuarios/:username", h.Delete)
}

func registerContratoRoutes(api *gin.RouterGroup, h *handlers.ContratoHandler) {
	api.GET("/contratos", h.List)
	api.POST("/contratos", h.Create)
	api.GET("/contratos/:id", h.GetByID)
	api.PUT("/contratos/:id", h.Update)
	api.DELETE("/contratos/:id", h.Delete)
}
