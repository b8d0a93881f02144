package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine: session middleware, views, and every
// route registered exactly once.
func NewRouter(h *Handlers, sessionSecret, templateDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Something went wrong",
		})
	}))

	// Sessions live in process memory, keyed by a signed opaque cookie. They
	// do not survive a restart.
	sessionStore := memstore.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(SessionCookieName, sessionStore))

	router.LoadHTMLGlob(filepath.Join(templateDir, "*.html"))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Register)
	router.GET("/logout", h.Logout)

	protected := router.Group("")
	protected.Use(h.RequireLogin())
	{
		protected.GET("/home", h.Home)
		protected.POST("/add-expense", h.AddExpense)
		protected.POST("/delete-expense", h.DeleteExpense)
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Not Found",
		})
	})

	return router
}
