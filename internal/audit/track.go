package audit

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/monitoring"
)

// Track records a successful write by the request's principal and counts it.
// action is the verb ("created", "updated", "deleted").
func Track(ctx context.Context, rec Recorder, entity, action string, id uint, meta any) {
	monitoring.ResourceChanges.WithLabelValues(entity, action).Inc()
	if rec == nil {
		return
	}
	rec.Record(ctx, Event{
		UserID:   auth.ActorID(ctx),
		Action:   entity + "_" + action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	})
}
