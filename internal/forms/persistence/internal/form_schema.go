package internal

import (
	formsDomain "formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/infra/utils"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
)

// FormSchema is the stored shape of one saved schema. The field names are
// shared with every other reader of the collection and must not change.
type FormSchema struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Fields    []Field    `json:"fields"`
	CreatedAt utils.Time `json:"createdAt"`
}

type Field struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Label           string           `json:"label"`
	Required        bool             `json:"required"`
	DefaultValue    any              `json:"defaultValue,omitempty"`
	ValidationRules []ValidationRule `json:"validationRules"`
	Options         *[]SelectOption  `json:"options,omitempty"`
	DerivedConfig   *DerivedConfig   `json:"derivedConfig,omitempty"`
}

type ValidationRule struct {
	Type    string `json:"type"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DerivedConfig struct {
	IsDerived    bool     `json:"isDerived"`
	ParentFields []string `json:"parentFields"`
	Formula      string   `json:"formula"`
}

func (m FormSchema) ToDomain() formsDomain.FormSchema {
	fields := make([]formsDomain.Field, len(m.Fields))
	for i, f := range m.Fields {
		fields[i] = f.ToDomain()
	}

	return formsDomain.FormSchema{
		ID:        shareddomain.ID(m.ID),
		Name:      shareddomain.Name(m.Name),
		Fields:    fields,
		CreatedAt: m.CreatedAt.Time,
	}
}

func (m Field) ToDomain() formsDomain.Field {
	result := formsDomain.Field{
		ID:              shareddomain.ID(m.ID),
		Type:            formsDomain.FieldType(m.Type),
		Label:           m.Label,
		Required:        m.Required,
		DefaultValue:    m.DefaultValue,
		ValidationRules: make([]formsDomain.ValidationRule, len(m.ValidationRules)),
	}

	for i, r := range m.ValidationRules {
		result.ValidationRules[i] = formsDomain.ValidationRule{
			Type:    formsDomain.RuleType(r.Type),
			Value:   r.Value,
			Message: r.Message,
		}
	}

	var options []SelectOption
	if m.Options != nil {
		options = *m.Options
	}
	if len(options) > 0 || result.Type.RequiresOptions() {
		result.Options = make([]formsDomain.SelectOption, len(options))
		for i, o := range options {
			result.Options[i] = formsDomain.SelectOption{Label: o.Label, Value: o.Value}
		}
	}

	if m.DerivedConfig != nil {
		parents := make([]shareddomain.ID, len(m.DerivedConfig.ParentFields))
		for i, p := range m.DerivedConfig.ParentFields {
			parents[i] = shareddomain.ID(p)
		}
		result.DerivedConfig = &formsDomain.DerivedFieldConfig{
			IsDerived:    m.DerivedConfig.IsDerived,
			ParentFields: parents,
			Formula:      m.DerivedConfig.Formula,
		}
	}

	return result
}

func FromFormSchema(value formsDomain.FormSchema) FormSchema {
	fields := make([]Field, len(value.Fields))
	for i, f := range value.Fields {
		fields[i] = FromField(f)
	}

	return FormSchema{
		ID:        value.ID.String(),
		Name:      value.Name.String(),
		Fields:    fields,
		CreatedAt: utils.Time{Time: value.CreatedAt},
	}
}

func FromField(value formsDomain.Field) Field {
	result := Field{
		ID:              value.ID.String(),
		Type:            string(value.Type),
		Label:           value.Label,
		Required:        value.Required,
		DefaultValue:    value.DefaultValue,
		ValidationRules: make([]ValidationRule, len(value.ValidationRules)),
	}

	for i, r := range value.ValidationRules {
		result.ValidationRules[i] = ValidationRule{
			Type:    string(r.Type),
			Value:   r.Value,
			Message: r.Message,
		}
	}

	// Option fields always carry the key, even with no options.
	if len(value.Options) > 0 || value.Type.RequiresOptions() {
		options := make([]SelectOption, len(value.Options))
		for i, o := range value.Options {
			options[i] = SelectOption{Label: o.Label, Value: o.Value}
		}
		result.Options = &options
	}

	if value.DerivedConfig != nil {
		parents := make([]string, len(value.DerivedConfig.ParentFields))
		for i, p := range value.DerivedConfig.ParentFields {
			parents[i] = p.String()
		}
		result.DerivedConfig = &DerivedConfig{
			IsDerived:    value.DerivedConfig.IsDerived,
			ParentFields: parents,
			Formula:      value.DerivedConfig.Formula,
		}
	}

	return result
}
