// Package rest exposes the storefront over HTTP with gin. Per-entity
// CRUD is handled directly against the database; anything that touches
// more than one record set goes through the storefront service.
package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
)

// paramID parses a path parameter as an int64 ID.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondStoreErr maps a storefront failure to a stable HTTP status.
// Unrecognized errors are reported as 500 without translation.
func respondStoreErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, storefront.ErrEmptyCart),
		errors.Is(err, storefront.ErrInvalidRating),
		errors.Is(err, storefront.ErrInvalidAmount),
		errors.Is(err, storefront.ErrSelfFriendship):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, storefront.ErrAccountNotFound),
		errors.Is(err, storefront.ErrTitleNotFound),
		errors.Is(err, storefront.ErrFriendshipNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, storefront.ErrAlreadyOwned),
		errors.Is(err, storefront.ErrDuplicateFriendship):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, storefront.ErrInsufficientBalance):
		status = http.StatusPaymentRequired
		msg = err.Error()
	case errors.Is(err, storefront.ErrNotOwned):
		status = http.StatusForbidden
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

// isUniqueViolation detects duplicate-key errors from common database drivers.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "already exists")
}
