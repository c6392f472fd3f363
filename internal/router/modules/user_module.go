package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/spookymotion/signup-api/internal/interface/http"
)

// Module wires the user sign-up endpoints.
// Public: POST /api/v1/users/register, POST /api/v1/users/activate
type Module struct {
	Handler *handlers.UserHandler
}

func New(h *handlers.UserHandler) *Module {
	return &Module{Handler: h}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", m.Handler.Register)
		users.POST("/activate", m.Handler.Activate)
	}
}
