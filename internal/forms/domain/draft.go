package domain

import (
	"fmt"
	"formbuilder-server/internal/infra/utils"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"slices"
	"time"
)

// Draft is the in-progress schema edited by the builder. Fields live in an
// arena keyed by id; order holds the display sequence of those ids, so
// positional edits never invalidate lookups by id.
type Draft struct {
	name   string
	fields map[shareddomain.ID]Field
	order  []shareddomain.ID
}

// DraftView is a read-only snapshot of a draft.
type DraftView struct {
	Name   string
	Fields []Field
}

var _ FieldLookup = (*Draft)(nil)

func NewDraft() *Draft {
	return &Draft{
		fields: make(map[shareddomain.ID]Field),
		order:  make([]shareddomain.ID, 0),
	}
}

func (d *Draft) Name() string {
	return d.name
}

func (d *Draft) Len() int {
	return len(d.order)
}

func (d *Draft) Field(id shareddomain.ID) (Field, bool) {
	f, ok := d.fields[id]
	return f, ok
}

// Fields returns the fields in display order.
func (d *Draft) Fields() []Field {
	result := make([]Field, len(d.order))
	for i, id := range d.order {
		result[i] = d.fields[id]
	}
	return result
}

func (d *Draft) View() DraftView {
	return DraftView{Name: d.name, Fields: d.Fields()}
}

func (d *Draft) SetName(name string) {
	d.name = name
}

// AddField appends a field. A field without id gets a fresh one.
func (d *Draft) AddField(field Field) (Field, error) {
	if field.ID.IsEmpty() {
		field.ID = shareddomain.ID(utils.GenerateUUID())
	}
	if _, exists := d.fields[field.ID]; exists {
		return Field{}, fmt.Errorf("%w: %s", ErrDuplicateFieldID, field.ID)
	}

	d.fields[field.ID] = field
	d.order = append(d.order, field.ID)
	return field, nil
}

// UpdateField replaces the field at index. An empty id on the replacement
// keeps the id of the field being replaced.
func (d *Draft) UpdateField(index int, field Field) error {
	if err := d.CheckIndex(index); err != nil {
		return err
	}

	current := d.order[index]
	if field.ID.IsEmpty() {
		field.ID = current
	}
	if field.ID != current {
		if _, exists := d.fields[field.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateFieldID, field.ID)
		}
		delete(d.fields, current)
		d.order[index] = field.ID
	}

	d.fields[field.ID] = field
	return nil
}

func (d *Draft) DeleteField(index int) error {
	if err := d.CheckIndex(index); err != nil {
		return err
	}

	delete(d.fields, d.order[index])
	d.order = slices.Delete(d.order, index, index+1)
	return nil
}

// Reorder moves the field at from so that it ends up at position to. The
// relative order of every other field is kept.
func (d *Draft) Reorder(from, to int) error {
	if err := d.CheckIndex(from); err != nil {
		return err
	}
	if err := d.CheckIndex(to); err != nil {
		return err
	}

	moved := d.order[from]
	d.order = slices.Delete(d.order, from, from+1)
	d.order = slices.Insert(d.order, to, moved)
	return nil
}

// IsSavable reports whether the draft has a non-blank name and at least one field.
func (d *Draft) IsSavable() bool {
	return !shareddomain.Name(d.name).IsBlank() && len(d.order) > 0
}

// Freeze produces the immutable schema for this draft.
func (d *Draft) Freeze(id shareddomain.ID, createdAt time.Time) FormSchema {
	return FormSchema{
		ID:        id,
		Name:      shareddomain.Name(d.name),
		Fields:    d.Fields(),
		CreatedAt: createdAt,
	}
}

// Preview returns the draft as an unsaved schema.
func (d *Draft) Preview() FormSchema {
	return d.Freeze("", time.Time{})
}

func (d *Draft) Reset() {
	d.name = ""
	d.fields = make(map[shareddomain.ID]Field)
	d.order = make([]shareddomain.ID, 0)
}

// CheckIndex reports ErrIndexOutOfRange unless index addresses a field.
func (d *Draft) CheckIndex(index int) error {
	if index < 0 || index >= len(d.order) {
		return fmt.Errorf("%w: index %d, %d fields", ErrIndexOutOfRange, index, len(d.order))
	}
	return nil
}
