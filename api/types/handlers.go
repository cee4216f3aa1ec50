package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/internal/services/output"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// Result is an operation output that knows its HTTP status
type Result interface {
	Status() int
}

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// Respond writes an operation output with the status matching its outcome
func Respond(c *gin.Context, out Result) {
	c.JSON(out.Status(), out)
}

// RespondCreated is Respond with 201 for a successful create
func RespondCreated(c *gin.Context, out Result) {
	status := out.Status()
	if status == http.StatusOK {
		status = http.StatusCreated
	}
	c.JSON(status, out)
}

// Abort stops the chain with a failed output and its status
func Abort(c *gin.Context, out output.Output) {
	c.AbortWithStatusJSON(out.Status(), out)
}

// SendUnauthorized aborts with an UNAUTHORIZED output
func SendUnauthorized(c *gin.Context, message string) {
	Abort(c, output.Fail(apperrors.ErrCodeUnauthorized, message))
}

// SendForbidden aborts with a FORBIDDEN output
func SendForbidden(c *gin.Context, message string) {
	Abort(c, output.Fail(apperrors.ErrCodeForbidden, message))
}
