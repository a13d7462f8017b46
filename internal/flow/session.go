package flow

import "loadup-backend/internal/model"

// Session is one in-progress questionnaire: the chosen service, the 1-based
// current step and the form filled in so far. Step 0 means the home screen.
type Session struct {
	Step int
	Form model.Form
}

// SelectService starts a fresh flow. Any previously entered form data is
// discarded; only the new service survives.
func (s *Session) SelectService(service model.ServiceType) error {
	if !service.Valid() {
		return ErrNoService
	}
	s.Form = model.Form{Service: service}
	switch service {
	case model.ServiceUmzug:
		s.Form.Umzug = &model.UmzugDetails{}
	case model.ServiceTransport:
		s.Form.Transport = &model.TransportDetails{}
	case model.ServiceEntsorgung:
		s.Form.Entsorgung = &model.EntsorgungDetails{}
	}
	s.Step = 1
	return nil
}

// SelectSubtype records the sub-category on step 1 and moves to step 2.
func (s *Session) SelectSubtype(subtype string) error {
	switch s.Form.Service {
	case model.ServiceUmzug:
		t := model.UmzugType(subtype)
		if !t.Valid() {
			return ErrUnknownSubtype
		}
		s.Form.Umzug.Type = t
	case model.ServiceTransport:
		t := model.TransportType(subtype)
		if !t.Valid() {
			return ErrUnknownSubtype
		}
		s.Form.Transport.Type = t
	case model.ServiceEntsorgung:
		t := model.EntsorgungType(subtype)
		if !t.Valid() {
			return ErrUnknownSubtype
		}
		s.Form.Entsorgung.Type = t
	default:
		return ErrNoService
	}
	s.Step = 2
	return nil
}

// Current returns the identifier of the step the session is on.
func (s *Session) Current() (Step, bool) {
	return StepAt(s.Form.Service, s.Step)
}

// Advance moves to the next step once the current step's precondition holds.
// The final (contact) step is left via Submit-side validation, not Advance.
func (s *Session) Advance() error {
	step, ok := s.Current()
	if !ok {
		return ErrStepOutOfRange
	}
	if err := CheckStep(step, &s.Form); err != nil {
		return err
	}
	if s.Step >= TotalSteps(s.Form.Service) {
		return ErrAtLastStep
	}
	s.Step++
	return nil
}

// Back steps one screen back, or exits to the home view from step 1 or 0.
// Form data is kept on exit; only a fresh service selection clears it.
func (s *Session) Back() (exited bool) {
	if s.Step > 1 {
		s.Step--
		return false
	}
	s.Step = 0
	return true
}

// Reset returns the session to the home screen with an empty form, as after
// a completed submission.
func (s *Session) Reset() {
	s.Step = 0
	s.Form = model.Form{}
}
