package response

import "github.com/gin-gonic/gin"

// Message writes the {"msg": ...} body the API uses everywhere a full
// resource payload is not called for.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// Error is Message for failures; kept separate so call sites read clearly.
// Raw driver/internal error text must never be passed in here.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// Denied is the 401 shape for requests with no usable credential.
func Denied(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"auth": false, "msg": msg})
}
