package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// callerUserID identifies the acting user for audit columns. There is no
// authentication layer; the client supplies its user id in a header.
func callerUserID(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return "system"
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerBranchRoutes(v1, service.Branch)
	registerPartyRoutes(v1, service.Party)
	registerItemRoutes(v1, service.Item)
	registerShiftRoutes(v1, service.Shift, service.Ledger)
	registerBranchShiftHistoryRoute(v1, service.Shift)
	registerLedgerRoutes(v1, service.Ledger)
	registerBalanceRoutes(v1, service.Balance)
}
