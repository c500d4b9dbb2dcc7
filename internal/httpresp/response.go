package httpresp

import "github.com/gin-gonic/gin"

// Success writers shared by every handler. Error responses live in
// httperr; together they keep the wire format in two places only.

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}
