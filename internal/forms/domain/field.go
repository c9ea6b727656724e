package domain

import (
	"fmt"
	"formbuilder-server/internal/infra/utils"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"slices"
	"strings"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeDate     FieldType = "date"
)

var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeNumber,
	FieldTypeTextarea,
	FieldTypeSelect,
	FieldTypeRadio,
	FieldTypeCheckbox,
	FieldTypeDate,
}

func (t FieldType) IsValid() bool {
	return slices.Contains(FieldTypes, t)
}

// RequiresOptions reports whether fields of this type pick from an option set.
func (t FieldType) RequiresOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

type RuleType string

const (
	RuleTypeRequired  RuleType = "required"
	RuleTypeMinLength RuleType = "minLength"
	RuleTypeMaxLength RuleType = "maxLength"
	RuleTypeEmail     RuleType = "email"
	RuleTypePassword  RuleType = "password"
)

var RuleTypes = []RuleType{
	RuleTypeRequired,
	RuleTypeMinLength,
	RuleTypeMaxLength,
	RuleTypeEmail,
	RuleTypePassword,
}

func (t RuleType) IsValid() bool {
	return slices.Contains(RuleTypes, t)
}

func (t RuleType) NeedsValue() bool {
	return t == RuleTypeMinLength || t == RuleTypeMaxLength
}

// ValidationRule is checked at submit time. Value is a number or a numeric
// string for the length rules and nil otherwise.
type ValidationRule struct {
	Type    RuleType
	Value   any
	Message string
}

func (r ValidationRule) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownRuleType, r.Type)
	}
	if r.Type.NeedsValue() && r.Value == nil {
		return fmt.Errorf("%w: %s", ErrMissingRuleValue, r.Type)
	}
	return nil
}

type SelectOption struct {
	Label string
	Value string
}

type DerivedFieldConfig struct {
	IsDerived    bool
	ParentFields []shareddomain.ID
	Formula      string
}

type Field struct {
	ID              shareddomain.ID
	Type            FieldType
	Label           string
	Required        bool
	DefaultValue    any
	ValidationRules []ValidationRule
	Options         []SelectOption
	DerivedConfig   *DerivedFieldConfig
}

// IsDerived reports whether the field value is computed from other fields.
func (f Field) IsDerived() bool {
	return f.DerivedConfig != nil && f.DerivedConfig.IsDerived
}

// Parents returns the ids this field derives from, or nil for input fields.
func (f Field) Parents() []shareddomain.ID {
	if !f.IsDerived() {
		return nil
	}
	return f.DerivedConfig.ParentFields
}

func (f Field) Validate() error {
	if !f.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownFieldType, f.Type)
	}
	if strings.TrimSpace(f.Label) == "" {
		return ErrEmptyLabel
	}
	for _, rule := range f.ValidationRules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	if !f.ID.IsEmpty() && slices.Contains(f.Parents(), f.ID) {
		return ErrDerivedSelfParent
	}
	return nil
}

func NewFieldBuilder() *fieldBuilder {
	return &fieldBuilder{}
}

type fieldBuilder struct {
	actions []fieldHandler
}

type fieldHandler func(v *Field) error

func (b *fieldBuilder) WithID(value shareddomain.ID) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.ID = value
		return nil
	})
	return b
}

func (b *fieldBuilder) WithType(value FieldType) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Type = value
		return nil
	})
	return b
}

func (b *fieldBuilder) WithLabel(value string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Label = value
		return nil
	})
	return b
}

func (b *fieldBuilder) WithRequired(value bool) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Required = value
		return nil
	})
	return b
}

func (b *fieldBuilder) WithDefaultValue(value any) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.DefaultValue = value
		return nil
	})
	return b
}

func (b *fieldBuilder) WithValidationRule(ruleType RuleType, value any, message string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.ValidationRules = append(f.ValidationRules, ValidationRule{Type: ruleType, Value: value, Message: message})
		return nil
	})
	return b
}

func (b *fieldBuilder) WithOption(label, value string) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.Options = append(f.Options, SelectOption{Label: label, Value: value})
		return nil
	})
	return b
}

func (b *fieldBuilder) WithDerivation(formula string, parents ...shareddomain.ID) *fieldBuilder {
	b.actions = append(b.actions, func(f *Field) error {
		f.DerivedConfig = &DerivedFieldConfig{
			IsDerived:    true,
			ParentFields: parents,
			Formula:      formula,
		}
		return nil
	})
	return b
}

func (b *fieldBuilder) Build() (Field, error) {
	result := Field{
		ID:              shareddomain.ID(utils.GenerateUUID()),
		Type:            FieldTypeText,
		ValidationRules: make([]ValidationRule, 0),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Field{}, err
		}
	}

	if result.Type.RequiresOptions() && result.Options == nil {
		result.Options = make([]SelectOption, 0)
	}

	if err := result.Validate(); err != nil {
		return Field{}, err
	}

	return result, nil
}
