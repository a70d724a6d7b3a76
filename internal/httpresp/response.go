package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Success: true,
		Data:    data,
		Total:   len(data),
	})
}
