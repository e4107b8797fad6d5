package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGreeting reports the host identity.
// c.String writes the body verbatim when no format arguments are given,
// so a HOSTNAME containing '%' is not interpreted.
func (s *Server) handleGreeting(c *gin.Context) {
	c.String(http.StatusOK, s.greeter.Greeting())
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, s.greeter.Health())
}
