package usecases

import (
	"errors"
	"fmt"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/validation"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"maps"
)

var (
	ErrFieldNotFound    = errors.New("field not found in schema")
	ErrSessionSubmitted = errors.New("session already submitted")
)

type Phase string

const (
	PhaseFilling   Phase = "filling"
	PhaseSubmitted Phase = "submitted"
)

// SubmitResult carries the failures of one submission keyed by field id.
// It is a success when Errors is empty.
type SubmitResult struct {
	Errors map[shareddomain.ID]string
}

func (r SubmitResult) Success() bool {
	return len(r.Errors) == 0
}

// SessionView is a snapshot of a session for presentation.
type SessionView struct {
	Schema domain.FormSchema
	Values domain.Values
	Errors map[shareddomain.ID]string
	Phase  Phase
}

// Session holds the live input of one fill of a schema. It never modifies
// the schema it was opened with.
type Session struct {
	schema    domain.FormSchema
	evaluator *derived.Evaluator
	values    domain.Values
	derived   domain.Values
	errors    map[shareddomain.ID]string
	phase     Phase
}

func NewSession(schema domain.FormSchema, evaluator *derived.Evaluator) *Session {
	s := &Session{
		schema:    schema,
		evaluator: evaluator,
		values:    make(domain.Values),
		errors:    make(map[shareddomain.ID]string),
		phase:     PhaseFilling,
	}
	s.recompute()
	return s
}

func (s *Session) Schema() domain.FormSchema {
	return s.schema
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Errors() map[shareddomain.ID]string {
	return maps.Clone(s.errors)
}

func (s *Session) DerivedValues() domain.Values {
	return s.derived.Clone()
}

// Value is what the field currently shows: the computed value of a derived
// field, else the stored input, else the default, else empty.
func (s *Session) Value(fieldID shareddomain.ID) any {
	field, ok := s.schema.Field(fieldID)
	if !ok {
		return nil
	}
	if field.IsDerived() {
		if value, ok := s.derived[fieldID]; ok {
			return value
		}
		return ""
	}
	if value := s.current(field); value != nil {
		return value
	}
	return ""
}

// SetValue stores raw input and recomputes every derived field. Writes to a
// derived field are ignored.
func (s *Session) SetValue(fieldID shareddomain.ID, value any) error {
	field, ok := s.schema.Field(fieldID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, fieldID)
	}
	if s.phase == PhaseSubmitted {
		return ErrSessionSubmitted
	}
	if field.IsDerived() {
		return nil
	}

	s.values[fieldID] = value
	s.recompute()
	return nil
}

// Submit validates every input field and replaces the error set. A clean
// submission moves the session to PhaseSubmitted for good.
func (s *Session) Submit() SubmitResult {
	if s.phase == PhaseSubmitted {
		return SubmitResult{Errors: map[shareddomain.ID]string{}}
	}

	errs := make(map[shareddomain.ID]string)
	for _, field := range s.schema.Fields {
		if field.IsDerived() {
			continue
		}
		if outcome := validation.Validate(field, s.current(field)); !outcome.Valid {
			errs[field.ID] = outcome.Message
		}
	}

	s.errors = errs
	if len(errs) == 0 {
		s.phase = PhaseSubmitted
	}

	return SubmitResult{Errors: maps.Clone(errs)}
}

func (s *Session) View() SessionView {
	values := make(domain.Values, len(s.schema.Fields))
	for _, field := range s.schema.Fields {
		values[field.ID] = s.Value(field.ID)
	}
	return SessionView{
		Schema: s.schema,
		Values: values,
		Errors: s.Errors(),
		Phase:  s.phase,
	}
}

func (s *Session) current(field domain.Field) any {
	if value, ok := s.values[field.ID]; ok {
		return value
	}
	return field.DefaultValue
}

func (s *Session) recompute() {
	s.derived = s.evaluator.EvaluateAll(s.schema, s.values)
}
