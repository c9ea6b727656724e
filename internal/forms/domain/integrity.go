package domain

import (
	"fmt"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"slices"
	"strings"
)

type IntegrityErrorKind string

const (
	IntegrityUnresolvedParent     IntegrityErrorKind = "unresolved_parent"
	IntegritySelfReference        IntegrityErrorKind = "self_reference"
	IntegrityMissingOptions       IntegrityErrorKind = "missing_options"
	IntegrityDuplicateOptionValue IntegrityErrorKind = "duplicate_option_value"
	IntegrityDerivationCycle      IntegrityErrorKind = "derivation_cycle"
)

type IntegrityError struct {
	FieldID shareddomain.ID
	Kind    IntegrityErrorKind
	Detail  string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("field %s: %s: %s", e.FieldID, e.Kind, e.Detail)
}

// ValidateSchemaIntegrity reports structural problems in field order. It
// never fails fast; callers decide which kinds are fatal.
func ValidateSchemaIntegrity(schema FormSchema) []IntegrityError {
	result := make([]IntegrityError, 0)

	for _, field := range schema.Fields {
		for _, parentID := range field.Parents() {
			if parentID == field.ID {
				result = append(result, IntegrityError{
					FieldID: field.ID,
					Kind:    IntegritySelfReference,
					Detail:  fmt.Sprintf("%q derives from itself", field.Label),
				})
				continue
			}
			if _, ok := schema.Field(parentID); !ok {
				result = append(result, IntegrityError{
					FieldID: field.ID,
					Kind:    IntegrityUnresolvedParent,
					Detail:  fmt.Sprintf("parent %s not found", parentID),
				})
			}
		}

		if !field.Type.RequiresOptions() {
			continue
		}
		if len(field.Options) == 0 {
			result = append(result, IntegrityError{
				FieldID: field.ID,
				Kind:    IntegrityMissingOptions,
				Detail:  fmt.Sprintf("%s field %q has no options", field.Type, field.Label),
			})
		}
		for _, value := range duplicateOptionValues(field.Options) {
			result = append(result, IntegrityError{
				FieldID: field.ID,
				Kind:    IntegrityDuplicateOptionValue,
				Detail:  fmt.Sprintf("option value %q is repeated", value),
			})
		}
	}

	return append(result, derivationCycles(schema)...)
}

// HasKind reports whether any error in errs is of the given kind.
func HasKind(errs []IntegrityError, kind IntegrityErrorKind) bool {
	return slices.ContainsFunc(errs, func(e IntegrityError) bool {
		return e.Kind == kind
	})
}

func duplicateOptionValues(options []SelectOption) []string {
	seen := make(map[string]int, len(options))
	result := make([]string, 0)
	for _, option := range options {
		seen[option.Value]++
		if seen[option.Value] == 2 {
			result = append(result, option.Value)
		}
	}
	return result
}

const (
	unvisited = iota
	visiting
	visited
)

// derivationCycles walks parent edges depth first. A parent already on the
// stack closes a cycle, which is reported on the field that closed it.
func derivationCycles(schema FormSchema) []IntegrityError {
	result := make([]IntegrityError, 0)
	state := make(map[shareddomain.ID]int, len(schema.Fields))
	stack := make([]shareddomain.ID, 0)

	labelOf := func(id shareddomain.ID) string {
		if f, ok := schema.Field(id); ok {
			return f.Label
		}
		return id.String()
	}

	var visit func(id shareddomain.ID)
	visit = func(id shareddomain.ID) {
		state[id] = visiting
		stack = append(stack, id)

		field, _ := schema.Field(id)
		for _, parentID := range field.Parents() {
			if parentID == id {
				continue
			}
			if _, ok := schema.Field(parentID); !ok {
				continue
			}
			switch state[parentID] {
			case unvisited:
				visit(parentID)
			case visiting:
				start := slices.Index(stack, parentID)
				path := make([]string, 0, len(stack)-start+1)
				for _, member := range stack[start:] {
					path = append(path, labelOf(member))
				}
				path = append(path, labelOf(parentID))
				result = append(result, IntegrityError{
					FieldID: id,
					Kind:    IntegrityDerivationCycle,
					Detail:  strings.Join(path, " -> "),
				})
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = visited
	}

	for _, field := range schema.Fields {
		if state[field.ID] == unvisited {
			visit(field.ID)
		}
	}

	return result
}
