// Package flow implements the questionnaire state machine: which step comes
// next for each service, and what must be filled in before a step may be
// left.
package flow

import (
	"errors"

	"loadup-backend/internal/model"
)

// Step identifies one screen of a questionnaire flow.
type Step string

const (
	StepSubtype     Step = "subtype"
	StepPickup      Step = "pickup"
	StepDestination Step = "destination"
	StepProperty    Step = "property"
	StepExtras      Step = "extras"
	StepSchedule    Step = "schedule"
	StepCargo       Step = "cargo"
	StepAmount      Step = "amount"
	StepImages      Step = "images"
	StepContact     Step = "contact"
)

// Each flow ends with the image step followed by the contact step.
var flows = map[model.ServiceType][]Step{
	model.ServiceUmzug: {
		StepSubtype, StepPickup, StepDestination, StepProperty,
		StepExtras, StepSchedule, StepImages, StepContact,
	},
	model.ServiceTransport: {
		StepSubtype, StepPickup, StepDestination, StepCargo,
		StepImages, StepContact,
	},
	model.ServiceEntsorgung: {
		StepSubtype, StepPickup, StepAmount, StepSchedule,
		StepImages, StepContact,
	},
}

// placeholderSteps is reported before a service has been chosen.
const placeholderSteps = 5

// Selectable bucket labels offered by the questionnaire UI.
var (
	FloorOptions       = []string{"EG", "1.", "2.", "3.", "4.", "5+"}
	LivingSpaceOptions = []string{"Unter 50 m²", "50-80 m²", "80-120 m²", "120-150 m²", "Über 150 m²"}
	RoomOptions        = []string{"1", "2", "3", "4", "5+"}
	WasteAmountOptions = []string{"Wenig (bis 1 m³)", "Mittel (1-3 m³)", "Viel (3-5 m³)", "Sehr viel (5+ m³)"}
)

// Step precondition failures. Each one maps to an inline message on the step
// that raised it; none of them is fatal.
var (
	ErrNoService             = errors.New("no service selected")
	ErrStepOutOfRange        = errors.New("step out of range")
	ErrAtLastStep            = errors.New("already at the final step")
	ErrUnknownSubtype        = errors.New("unknown sub-category for this service")
	ErrSubtypeMissing        = errors.New("sub-category not selected")
	ErrPickupIncomplete      = errors.New("pickup street and zip are required")
	ErrDestinationIncomplete = errors.New("destination street and zip are required")
	ErrPropertyIncomplete    = errors.New("living space and room count are required")
	ErrScheduleIncomplete    = errors.New("date preference is required, with a date for fixed appointments")
	ErrCargoMissing          = errors.New("transport items description is required")
	ErrAmountMissing         = errors.New("waste amount is required")
	ErrImageCount            = errors.New("between 1 and 10 images are required")
	ErrContactIncomplete     = errors.New("first name, last name and phone are required")
	ErrEmailFormat           = errors.New("email address is not valid")
)

// Steps returns the ordered step sequence for a service, or nil for an
// unknown service.
func Steps(service model.ServiceType) []Step {
	return flows[service]
}

// TotalSteps is the fixed step count per service: umzug 8, transport 6,
// entsorgung 6. Before a service is chosen a placeholder count is returned.
func TotalSteps(service model.ServiceType) int {
	if seq, ok := flows[service]; ok {
		return len(seq)
	}
	return placeholderSteps
}

// StepAt maps a 1-based step number within a service flow to its step
// identifier.
func StepAt(service model.ServiceType, n int) (Step, bool) {
	seq, ok := flows[service]
	if !ok || n < 1 || n > len(seq) {
		return "", false
	}
	return seq[n-1], true
}

// CheckStep reports whether the form satisfies the step's completion
// precondition, returning the precondition error otherwise.
func CheckStep(step Step, f *model.Form) error {
	switch step {
	case StepSubtype:
		return checkSubtype(f)
	case StepPickup:
		return checkAddress(f.Pickup(), ErrPickupIncomplete)
	case StepDestination:
		return checkAddress(f.Destination(), ErrDestinationIncomplete)
	case StepProperty:
		if f.Umzug == nil || f.Umzug.LivingSpace == "" || f.Umzug.Rooms == "" {
			return ErrPropertyIncomplete
		}
	case StepExtras:
		// Add-ons are independent booleans with no required choice.
	case StepSchedule:
		return checkSchedule(&f.Schedule)
	case StepCargo:
		if f.Transport == nil || f.Transport.Items == "" {
			return ErrCargoMissing
		}
	case StepAmount:
		if f.Entsorgung == nil || f.Entsorgung.WasteAmount == "" {
			return ErrAmountMissing
		}
	case StepImages:
		if len(f.Images) < 1 || len(f.Images) > MaxImages {
			return ErrImageCount
		}
	case StepContact:
		return checkContact(&f.Contact)
	}
	return nil
}

// ValidateForm replays every step precondition of the form's flow, as if the
// customer had clicked through each screen. It is the submission gate.
func ValidateForm(f *model.Form) error {
	seq, ok := flows[f.Service]
	if !ok {
		return ErrNoService
	}
	for _, step := range seq {
		if err := CheckStep(step, f); err != nil {
			return err
		}
	}
	return nil
}

func checkSubtype(f *model.Form) error {
	switch f.Service {
	case model.ServiceUmzug:
		if f.Umzug == nil || !f.Umzug.Type.Valid() {
			return ErrSubtypeMissing
		}
	case model.ServiceTransport:
		if f.Transport == nil || !f.Transport.Type.Valid() {
			return ErrSubtypeMissing
		}
	case model.ServiceEntsorgung:
		if f.Entsorgung == nil || !f.Entsorgung.Type.Valid() {
			return ErrSubtypeMissing
		}
	default:
		return ErrNoService
	}
	return nil
}

func checkAddress(addr *model.Address, missing error) error {
	if addr == nil || addr.Street == "" || addr.Zip == "" {
		return missing
	}
	return nil
}

func checkSchedule(s *model.Schedule) error {
	switch s.DateType {
	case model.DateFlexible:
		return nil
	case model.DateFixed:
		if s.MoveDate == "" {
			return ErrScheduleIncomplete
		}
		return nil
	}
	return ErrScheduleIncomplete
}

func checkContact(c *model.Contact) error {
	if c.FirstName == "" || c.LastName == "" || c.Phone == "" {
		return ErrContactIncomplete
	}
	if !model.ValidEmail(c.Email) {
		return ErrEmailFormat
	}
	return nil
}
