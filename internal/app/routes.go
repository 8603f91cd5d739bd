package app

import (
	"github.com/aqsmith02/coffee-journal/internal/cache"
	"github.com/aqsmith02/coffee-journal/internal/config"
	dom "github.com/aqsmith02/coffee-journal/internal/domain"
	"github.com/aqsmith02/coffee-journal/internal/dto"
	"github.com/aqsmith02/coffee-journal/internal/handlers"
	"github.com/aqsmith02/coffee-journal/internal/repo"
	"github.com/aqsmith02/coffee-journal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	_ "github.com/aqsmith02/coffee-journal/docs"
)

// apiPrefixes are paths the SPA fallback must never swallow.
var apiPrefixes = []string{
	"/todos", "/coffee-entries", "/hands",
	"/health", "/version", "/swagger", "/swagger-doc.json", "/assets",
}

// Setup registers all routes on the given engine. rdb may be nil; the
// services then run without list caching.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("")
	ttl := cfg.Redis.DefaultTTL.Duration()

	var todoCache *cache.ListCache[dom.Todo]
	var coffeeCache *cache.ListCache[dom.CoffeeEntry]
	var handCache *cache.ListCache[dom.PokerHand]
	if rdb != nil {
		todoCache = cache.NewListCache[dom.Todo](rdb, "todo:list", ttl)
		coffeeCache = cache.NewListCache[dom.CoffeeEntry](rdb, "coffee:list", ttl)
		handCache = cache.NewListCache[dom.PokerHand](rdb, "hand:list", ttl)
	}

	todoSvc := service.NewTodoService(repo.NewPGTodoRepo(db), todoCache)
	handlers.NewResource[dto.CreateTodoRequest, dto.UpdateTodoRequest](
		"todo", todoSvc, handlers.TodoToResponse).
		Register(api, "/todos")

	coffeeSvc := service.NewCoffeeEntryService(repo.NewPGCoffeeEntryRepo(db), coffeeCache)
	handlers.NewResource[dto.CreateCoffeeEntryRequest, dto.UpdateCoffeeEntryRequest](
		"coffee entry", coffeeSvc, handlers.CoffeeEntryToResponse).
		Register(api, "/coffee-entries")

	handSvc := service.NewPokerHandService(repo.NewPGPokerHandRepo(db), handCache)
	handlers.NewResource[dto.CreatePokerHandRequest, dto.UpdatePokerHandRequest](
		"hand", handSvc, handlers.PokerHandToResponse).
		Register(api, "/hands")

	handlers.RegisterSPA(r, cfg.Static.Dir, apiPrefixes)
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
