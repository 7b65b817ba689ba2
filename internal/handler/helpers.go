package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edukamer/bootcamphub/internal/handler/middleware"
	"edukamer/bootcamphub/internal/model"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
)

var ErrNoClaims = errors.New("claims not found in context")

func getClaimsFromContext(c *gin.Context) (*jwtpkg.Claims, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyUserClaims)
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

func getUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func parseLeadStatus(raw string) (*model.LeadStatus, bool) {
	if raw == "" {
		return nil, true
	}
	status := model.LeadStatus(raw)
	if !status.Valid() {
		return nil, false
	}
	return &status, true
}
