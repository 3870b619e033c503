// Package gin thinly wraps the gin-gonic engine instantiation, so
// test suites and callers which only need an engine with some
// middlewares do not import the third-party module directly.
// The resource registration entry point lives in the nested routes
// package.
package gin

import "github.com/gin-gonic/gin"

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine
type RouterGroup = gin.RouterGroup

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

func Logger() HandlerFunc {
	return gin.Logger()
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}
