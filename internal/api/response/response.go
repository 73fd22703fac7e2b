package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应约定：成功返回 {"<资源名>": ...}，无资源的变更返回 {}，
// 错误返回 {"message": "..."} 加对应状态码。

// OK 成功响应，resource 为资源名（videos / video / comment / user ...）
func OK(c *gin.Context, resource string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{resource: data})
}

// Empty 成功但无资源体的响应
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Fail 错误响应
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
