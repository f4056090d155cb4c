package handlers

import (
	"strings"

	"lapor_publik/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Identity verification happens upstream; the trusted proxy forwards the
// authenticated identity in these headers.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
	headerAgencyID  = "X-Agency-Id"
)

func actorFromRequest(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:       strings.TrimSpace(c.GetHeader(headerActorID)),
		Role:     entities.Role(strings.TrimSpace(c.GetHeader(headerActorRole))),
		AgencyID: strings.TrimSpace(c.GetHeader(headerAgencyID)),
	}
}
