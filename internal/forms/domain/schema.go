package domain

import (
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"time"
)

// FieldLookup resolves a field by id. Implemented by FormSchema and Draft.
type FieldLookup interface {
	Field(id shareddomain.ID) (Field, bool)
}

// FormSchema is a saved, immutable form definition.
type FormSchema struct {
	ID        shareddomain.ID
	Name      shareddomain.Name
	Fields    []Field
	CreatedAt time.Time
}

var _ FieldLookup = FormSchema{}

func (s FormSchema) Field(id shareddomain.ID) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

func (s FormSchema) DerivedFields() []Field {
	result := make([]Field, 0)
	for _, f := range s.Fields {
		if f.IsDerived() {
			result = append(result, f)
		}
	}
	return result
}

// FieldByLabel returns the first field carrying the given label.
func (s FormSchema) FieldByLabel(label string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// Labels returns the field labels in display order.
func (s FormSchema) Labels() []string {
	result := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		result[i] = f.Label
	}
	return result
}
