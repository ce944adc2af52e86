// Package response mirrors the wire contract of the production backend:
// plain payloads on success, {"message": "..."} with a real HTTP status
// on failure — exactly what the client adapter normalizes against.
package response

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string)   { Fail(c, 400, message) }
func Unauthorized(c *gin.Context, message string) { Fail(c, 401, message) }
func Forbidden(c *gin.Context, message string)    { Fail(c, 403, message) }
func NotFound(c *gin.Context, message string)     { Fail(c, 404, message) }
func Internal(c *gin.Context, message string)     { Fail(c, 500, message) }
