package api

import (
	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api/controller"
	"github.com/partykeep/partykeep/internal/api/middleware"
	"github.com/partykeep/partykeep/internal/auth"
)

// RegisterRoutes wires every endpoint. Auth routes are public; user, task
// and character routes sit behind the JWT middleware.
func RegisterRoutes(
	r *gin.Engine,
	issuer *auth.TokenIssuer,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	taskCtrl *controller.TaskController,
	characterCtrl *controller.CharacterController,
) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api/auth")
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
		public.POST("/token", authCtrl.Token)
		public.POST("/logout", authCtrl.Logout)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth(issuer))
	{
		protected.GET("/user/me", userCtrl.Me)
		protected.PUT("/user/me", userCtrl.UpdateMe)

		protected.GET("/tasks", taskCtrl.List)
		protected.GET("/tasks/:taskId", taskCtrl.Get)
		protected.POST("/tasks", taskCtrl.Create)
		protected.PUT("/tasks/:taskId", taskCtrl.Update)
		protected.DELETE("/tasks/:taskId", taskCtrl.Delete)

		protected.GET("/characters", characterCtrl.List)
		protected.GET("/characters/:characterId", characterCtrl.Get)
		protected.POST("/characters", characterCtrl.Create)
		protected.PUT("/characters/:characterId", characterCtrl.Update)
		protected.DELETE("/characters/:characterId", characterCtrl.Delete)
	}
}
