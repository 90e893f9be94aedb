// Package middleware holds gin middlewares shared by every route.
package middleware

import (
	"net/http"
	"strings"

	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	TenantHeader = "x-tenant-id"
	tenantKey    = "tenantID"
)

var errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "Missing x-tenant-id header", http.StatusBadRequest)

// Tenant rejects requests without an x-tenant-id header and stores the
// tenant for handlers. The header is trusted as-is.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}
		c.Set(tenantKey, tenantID)
		c.Next()
	}
}

// TenantID returns the tenant stored by Tenant, or "" outside of it.
func TenantID(c *gin.Context) string {
	return c.GetString(tenantKey)
}
