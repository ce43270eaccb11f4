package routes

import (
	"net/http"
	"time"

	"hotelbot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler) {
	api := r.Group("/api")
	{
		api.POST("/chat", chatHandler.HandleChat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hotel Royal booking assistant"})
	})
}

// RegisterStaticRoutes serves the bundled chat UI.
func RegisterStaticRoutes(r *gin.Engine) {
	r.StaticFile("/", "./static/index.html")
	r.Static("/static", "./static")
}

// RegisterRoutes wires CORS and all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, chatHandler)
	RegisterStaticRoutes(r)
}
