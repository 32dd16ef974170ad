package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure is the error payload returned by all endpoints. Success bodies are
// endpoint-specific flat JSON; only failures share a shape.
type Failure struct {
	Detail string `json:"detail"`
}

// NotFound writes a 404 with a human-readable message.
func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, Failure{Detail: detail})
}

// BadRequest writes a 400 carrying the upstream provider's error text.
func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, Failure{Detail: detail})
}
