package api

import (
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/graphblog/api/internal/middleware"
)

// SetupRouter wires the single GraphQL endpoint. Authentication is not
// enforced here: the context builder only attaches claims, and each
// resolver decides whether it requires them.
func SetupRouter(schema *graphql.Schema, authMiddleware *middleware.AuthMiddleware) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	graphqlHandler := gin.WrapH(&relay.Handler{Schema: schema})
	r.POST("/graphql", authMiddleware.BuildContext(), graphqlHandler)

	return r
}
