package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Public routes are reachable without a token; staff routes sit behind
// the auth middleware.
type Module interface {
	RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup)
}
