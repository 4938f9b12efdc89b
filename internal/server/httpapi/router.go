// Package httpapi exposes the REST surface of peopled: the two auth flows
// and the token-protected directory endpoints. It decodes and validates
// requests, dispatches to the services, and maps sentinel errors to HTTP
// status codes.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/peopled/peopled/internal/logging"
	"github.com/peopled/peopled/internal/server/services"
)

type Server struct {
	logger    logging.Logger
	auth      *services.AuthService
	directory *services.DirectoryService
	jwtSecret []byte
}

// NewRouter constructs the gin engine with all routes wired. The directory
// group requires a bearer token issued by register/login; the auth endpoints
// are public.
func NewRouter(l logging.Logger, as *services.AuthService, ds *services.DirectoryService, secretKey string) *gin.Engine {
	s := &Server{
		logger:    l.With("module", "httpapi"),
		auth:      as,
		directory: ds,
		jwtSecret: []byte(secretKey),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	users := r.Group("/users", s.bearerAuth())
	{
		users.GET("", s.listUsers)
		users.POST("", s.createUser)
		users.GET("/:id", s.getUser)
		users.PATCH("/:id", s.updateUser)
		users.DELETE("/:id", s.deleteUser)
	}

	return r
}
