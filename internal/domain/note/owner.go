// Package note models notes and the records that own them.
package note

import (
	"fmt"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// Kind names an owner variant. Its value is the stored memoable_type.
type Kind string

const (
	KindClient      Kind = models.MemoableClient
	KindAppointment Kind = models.MemoableAppointment
)

// Owner is the record a note hangs off: ClientOwner or AppointmentOwner.
type Owner interface {
	Kind() Kind
	OwnerID() uint
	Permits(a Action) bool
	// NotFound is the error for a missing owner record.
	NotFound() error
	sealed()
}

type ClientOwner struct{ ID uint }

func (o ClientOwner) Kind() Kind      { return KindClient }
func (o ClientOwner) OwnerID() uint   { return o.ID }
func (o ClientOwner) NotFound() error { return httperr.ErrBusiness("client_not_found") }
func (ClientOwner) sealed()           {}

// Client notes can be written and edited but not removed.
func (o ClientOwner) Permits(a Action) bool {
	return a == ActionCreate || a == ActionUpdate
}

type AppointmentOwner struct{ ID uint }

func (o AppointmentOwner) Kind() Kind      { return KindAppointment }
func (o AppointmentOwner) OwnerID() uint   { return o.ID }
func (o AppointmentOwner) NotFound() error { return httperr.ErrBusiness("appointment_not_found") }
func (AppointmentOwner) sealed()           {}

func (o AppointmentOwner) Permits(a Action) bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDestroy:
		return true
	}
	return false
}

// Owner builds the variant of kind k for id.
func (k Kind) Owner(id uint) (Owner, error) {
	switch k {
	case KindClient:
		return ClientOwner{ID: id}, nil
	case KindAppointment:
		return AppointmentOwner{ID: id}, nil
	}
	return nil, fmt.Errorf("unknown memoable type %q", string(k))
}

// Actions lists what notes under k support, in route order.
func (k Kind) Actions() []Action {
	owner, err := k.Owner(0)
	if err != nil {
		return nil
	}
	var out []Action
	for _, a := range []Action{ActionCreate, ActionUpdate, ActionDestroy} {
		if owner.Permits(a) {
			out = append(out, a)
		}
	}
	return out
}

// OwnerOf decodes the polymorphic pair stored on n.
func OwnerOf(n *models.Note) (Owner, error) {
	return Kind(n.MemoableType).Owner(n.MemoableID)
}

// Attach points n at owner.
func Attach(n *models.Note, owner Owner) {
	n.MemoableType = string(owner.Kind())
	n.MemoableID = owner.OwnerID()
}
