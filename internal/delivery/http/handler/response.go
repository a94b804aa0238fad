package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

// Every response uses the same envelope: {success, data} or
// {success, error:{code, message}}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{Success: false, Error: &errorBody{Code: code, Message: message}})
}

// respondDomainError maps domain sentinel errors onto the stable error codes
// of the API. Unknown errors become an opaque SERVER_ERROR.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingReceiver),
		errors.Is(err, domain.ErrSelfInterest),
		errors.Is(err, domain.ErrMessageTooLong),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrInvalidDirection):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		respondError(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "profile not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	case errors.Is(err, domain.ErrInterestNotFound):
		respondError(c, http.StatusNotFound, "INTEREST_NOT_FOUND", "interest not found")
	case errors.Is(err, domain.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "notification not found")
	case errors.Is(err, domain.ErrInterestExists):
		respondError(c, http.StatusConflict, "INTEREST_EXISTS", "interest already sent to this user")
	case errors.Is(err, domain.ErrInterestResponded):
		respondError(c, http.StatusConflict, "INTEREST_ALREADY_RESPONDED", "interest has already been responded to")
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		respondError(c, http.StatusConflict, "PROFILE_EXISTS", "profile already exists")
	case errors.Is(err, domain.ErrEmailExists):
		respondError(c, http.StatusConflict, "EMAIL_EXISTS", "email already registered")
	case errors.Is(err, domain.ErrNotInterestReceiver):
		respondError(c, http.StatusForbidden, "FORBIDDEN", "only the receiver can respond to this interest")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
	default:
		respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "something went wrong")
	}
}

func respondBindingError(c *gin.Context) {
	respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
}

// actorFrom returns the authenticated actor set by the auth middleware, or
// nil on optional-auth routes without a token.
func actorFrom(c *gin.Context) *domain.Actor {
	v, exists := c.Get("actor")
	if !exists {
		return nil
	}
	actor, ok := v.(*domain.Actor)
	if !ok {
		return nil
	}
	return actor
}

// requireActor aborts with 401 when no actor is attached.
func requireActor(c *gin.Context) (*domain.Actor, bool) {
	actor := actorFrom(c)
	if actor == nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return nil, false
	}
	return actor, true
}

func pagination(c *gin.Context, defaultLimit, maxLimit int) (limit, skip int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
