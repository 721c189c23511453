package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type AuditLogs struct{ s *Store }

func (s *Store) AuditLogs() *AuditLogs { return &AuditLogs{s: s} }

func (r *AuditLogs) Record(_ context.Context, ev audit.Event) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := audit.ToRow(ev)
	row.ID = r.s.nextID()
	row.CreatedAt = r.s.now()
	r.s.audit = append(r.s.audit, row)
}

func (r *AuditLogs) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := []models.AuditLog{}
	for _, row := range r.s.audit {
		switch {
		case f.Action != "" && row.Action != f.Action:
		case f.Entity != "" && row.Entity != f.Entity:
		case f.From != nil && row.CreatedAt.Before(*f.From):
		case f.To != nil && !row.CreatedAt.Before(*f.To):
		default:
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

// Actions returns the recorded actions, oldest first.
func (r *AuditLogs) Actions() []string {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]string, 0, len(r.s.audit))
	for _, row := range r.s.audit {
		out = append(out, row.Action)
	}
	return out
}

var _ audit.Store = (*AuditLogs)(nil)
