package appointment

import (
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("appointment_not_found")

const (
	msgBlank     = "can't be blank"
	msgMissing   = "must exist"
	msgNegative  = "must be greater than or equal to 0"
	msgImmutable = "cannot be changed"
)

// Attributes is the writable attribute set. Nil means "not supplied".
type Attributes struct {
	ClientID        *uint      `json:"client_id"`
	Time            *time.Time `json:"time"`
	UsdaQualifier   *bool      `json:"usda_qualifier"`
	NumAdults       *int       `json:"num_adults"`
	NumChildren     *int       `json:"num_children"`
	AppointmentType []string   `json:"appointment_type"`
}

// Build returns a new, unvalidated appointment.
func Build(attrs Attributes) *models.Appointment {
	ap := &models.Appointment{AppointmentType: pq.StringArray{}}
	if attrs.ClientID != nil {
		ap.ClientID = *attrs.ClientID
	}
	apply(ap, attrs)
	return ap
}

// Merge applies attrs onto ap. The owning client never changes after
// creation: a different client_id is dropped and reported in the result.
func Merge(ap *models.Appointment, attrs Attributes) httperr.Errors {
	rejected := httperr.Errors{}
	if attrs.ClientID != nil && *attrs.ClientID != ap.ClientID {
		rejected.Add("client_id", msgImmutable)
	}
	apply(ap, attrs)
	return rejected
}

func apply(ap *models.Appointment, attrs Attributes) {
	if attrs.Time != nil {
		ap.Time = *attrs.Time
	}
	if attrs.UsdaQualifier != nil {
		ap.UsdaQualifier = *attrs.UsdaQualifier
	}
	if attrs.NumAdults != nil {
		ap.NumAdults = *attrs.NumAdults
	}
	if attrs.NumChildren != nil {
		ap.NumChildren = *attrs.NumChildren
	}
	if attrs.AppointmentType != nil {
		ap.AppointmentType = NormalizeTypes(attrs.AppointmentType)
	}
}

// Validate reports attribute problems. clientExists is the result of the
// repository lookup for ap.ClientID and is ignored when ClientID is zero.
func Validate(ap *models.Appointment, clientExists bool) httperr.Errors {
	errs := httperr.Errors{}

	switch {
	case ap.ClientID == 0:
		errs.Add("client_id", msgBlank)
	case !clientExists:
		errs.Add("client", msgMissing)
	}

	if ap.Time.IsZero() {
		errs.Add("time", msgBlank)
	}
	if ap.NumAdults < 0 {
		errs.Add("num_adults", msgNegative)
	}
	if ap.NumChildren < 0 {
		errs.Add("num_children", msgNegative)
	}

	return errs
}

// NormalizeTypes trims, lower-cases, de-duplicates and sorts category tags.
func NormalizeTypes(types []string) pq.StringArray {
	seen := make(map[string]struct{}, len(types))
	out := pq.StringArray{}
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
