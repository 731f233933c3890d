package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sundayvolley/volleyrank/config"
	"github.com/sundayvolley/volleyrank/internal/auth"
	"github.com/sundayvolley/volleyrank/internal/middleware"
	"github.com/sundayvolley/volleyrank/internal/player"
	"github.com/sundayvolley/volleyrank/internal/rating"
)

// SetupRoutes builds the HTTP engine around the injected database handle and
// configuration; nothing here reaches for globals.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Uploaded player photos are served as static files; the API only ever
	// stores the opaque /uploads/... reference.
	r.Static("/uploads", cfg.App.UploadDir)

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>VolleyRank</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Sunday Volley Stars 🏐</h1>
					<p><a href="/api/leaderboard">leaderboard</a> · <a href="/swagger/index.html">swagger</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api.Group("/auth"), db, cfg)
	player.RegisterPlayerRoutes(api, db, cfg, cfg.JWT.AccessTokenSecret)
	rating.RegisterRatingRoutes(api, db)

	return r
}
