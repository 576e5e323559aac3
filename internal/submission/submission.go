// Package submission holds the pieces shared by every form submission service:
// request binding, timestamps and the post-write audit/event fan-out.
package submission

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/events"
)

const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidBody   = "Invalid request body"
)

// TimeLayout matches JavaScript's Date.prototype.toISOString.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// BindJSON decodes and validates the request body into req. On failure it
// writes the 400 response and returns false.
func BindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgMissingFields})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidBody})
	return false
}

// Recorder audits submission outcomes and announces created records on the event bus.
// Neither side effect can fail the request.
type Recorder struct {
	audit     auditlog.Service
	publisher events.Publisher
}

func NewRecorder(audit auditlog.Service, publisher events.Publisher) *Recorder {
	return &Recorder{audit: audit, publisher: publisher}
}

// Created records a successful write of record under "<kind>:<id>".
func (r *Recorder) Created(ctx context.Context, kind, action, id string, record any, ip string, details map[string]interface{}) {
	if r == nil {
		return
	}
	key := kind + ":" + id
	if r.audit != nil {
		if err := r.audit.LogAction(ctx, action, key, details, ip, auditlog.StatusSuccess); err != nil {
			log.Error().Err(err).Str("action", action).Msg("❌ Audit log error")
		}
	}
	if r.publisher == nil {
		return
	}
	ev, err := events.NewSubmissionCreated(kind, id, record)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("❌ Building submission event failed")
		return
	}
	if err := r.publisher.Publish(ctx, ev.Topic, ev); err != nil {
		log.Error().Err(err).Str("topic", ev.Topic).Str("key", key).Msg("❌ Publishing submission event failed")
	}
}

// Failed records a failed submission. key may be empty when nothing was written.
func (r *Recorder) Failed(ctx context.Context, action, key string, cause error, ip string, details map[string]interface{}) {
	if r == nil || r.audit == nil {
		return
	}
	if details == nil {
		details = make(map[string]interface{})
	}
	details["error"] = cause.Error()
	if err := r.audit.LogAction(ctx, action, key, details, ip, auditlog.StatusFailure); err != nil {
		log.Error().Err(err).Str("action", action).Msg("❌ Audit log error")
	}
}
