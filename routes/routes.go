package routes

import (
	"net/http"
	"time"

	"trabby/handlers"
	"trabby/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the assembled handler bundle onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterContactRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the local catalog passthrough.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/v1/ferries", hb.ListFerries)
}

// RegisterContactRoutes registers the contact-details and thank-you stages.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/contact-details", hb.ShowContactDetails)
	r.POST("/contact-details", hb.StoreContactDetails)
	r.POST("/thank-you", hb.StoreThankYou)
}
