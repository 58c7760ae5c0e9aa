package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RowsResponse writes a bare JSON array of rows. Single-row lookups use the
// same shape; clients index into the array rather than reading an object.
func RowsResponse(c *gin.Context, rows interface{}) {
	c.JSON(http.StatusOK, rows)
}

// CreatedResponse reports a successful insert and echoes the new row id.
func CreatedResponse(c *gin.Context, id int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}

// SuccessResponse reports a successful update or delete.
func SuccessResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// MessageResponse reports success with a human-readable message.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// ErrorResponse writes the error body shape clients key off. The status stays
// 200; only an unknown resource path gets a non-200 status.
func ErrorResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"error": message,
	})
}

// NotFoundResponse is used solely for paths that name no known resource.
func NotFoundResponse(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Resource not found",
	})
}
