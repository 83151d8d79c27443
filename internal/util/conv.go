package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID 解析路径参数中的 id
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// PageFromQuery 读取 ?page=，缺省或非法时为 1
func PageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset 1 起始页码对应的偏移量
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
