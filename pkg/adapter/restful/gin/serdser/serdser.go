// Package serdser provides the common request binding and error
// serialization helpers which are shared by all resource packages.
// Binding failures are reported as a map from field names to their
// violation messages; use case errors are serialized through their
// cerr.Error wrapper when present.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/epiclounge/loungeweb/pkg/core/cerr"
)

// bindWith converts the outcome of one gin binding attempt into either
// a true result or a serialized 4xx/5xx response.
func bindWith(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// Bind binds and validates the JSON request body into req, reporting
// violations to the client itself and returning true on success.
func Bind(c *gin.Context, req any) bool {
	return bindWith(c, c.ShouldBindJSON(req))
}

// BindURI binds and validates the request path parameters into req,
// reporting violations to the client itself and returning true on
// success.
func BindURI(c *gin.Context, req any) bool {
	return bindWith(c, c.ShouldBindUri(req))
}

// BindQuery binds and validates the request query parameters into req,
// reporting violations to the client itself and returning true on
// success.
func BindQuery(c *gin.Context, req any) bool {
	return bindWith(c, c.ShouldBindQuery(req))
}

// AddErr appends msgs to the violation messages of the name field,
// allocating the errs map on its first use.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// SerErr serializes a use case error, taking the HTTP status code from
// its cerr.Error wrapper when one is present in the error chain and
// falling back to an internal server error otherwise.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
