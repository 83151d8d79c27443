package controller

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// bindJSON 语法错误或空请求体返回 400；字段类型错误返回 fieldErr
func bindJSON(ctx *gin.Context, obj interface{}, fieldErr *util.AppError) error {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		return util.Wrap(util.ErrInvalidBody, err)
	}
	return util.Wrap(fieldErr, err)
}

// flexInt 兼容前端以字符串提交的数字，如 "3"
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
