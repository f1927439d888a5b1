package http

import (
	"github.com/Scott-fo/mern-tinder-backend/internal/delivery/http/handler"
	"github.com/Scott-fo/mern-tinder-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	messageHandler *handler.MessageHandler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		messageHandler: messageHandler,
	}
}

// Setup registers the routes at their original paths; the frontend
// depends on them verbatim, so there is no /api/v1 grouping here.
func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Auth
	router.POST("/signup", r.authHandler.Signup)
	router.POST("/login", r.authHandler.Login)

	// Users and matches
	router.GET("/user", r.userHandler.GetUser)
	router.PUT("/user", r.userHandler.UpdateUser)
	router.GET("/gendered-users", r.userHandler.GetGenderedUsers)
	router.GET("/matches", r.userHandler.GetMatches)
	router.PUT("/addmatch", r.userHandler.AddMatch)

	// Messages
	router.GET("/messages", r.messageHandler.GetMessages)
	router.POST("/message", r.messageHandler.CreateMessage)

	return router
}
