package internal

import (
	formsDomain "formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/usecases"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"time"
)

type FieldRequest struct {
	ID              string                  `json:"id,omitempty"`
	Type            string                  `json:"type"`
	Label           string                  `json:"label"`
	Required        bool                    `json:"required"`
	DefaultValue    any                     `json:"defaultValue,omitempty"`
	ValidationRules []ValidationRuleRequest `json:"validationRules"`
	Options         []SelectOption          `json:"options,omitempty"`
	DerivedConfig   *DerivedConfig          `json:"derivedConfig,omitempty"`
}

type ValidationRuleRequest struct {
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

type FieldResponse struct {
	ID              string                  `json:"id"`
	Type            string                  `json:"type"`
	Label           string                  `json:"label"`
	Required        bool                    `json:"required"`
	DefaultValue    any                     `json:"defaultValue,omitempty"`
	ValidationRules []ValidationRuleRequest `json:"validationRules"`
	Options         []SelectOption          `json:"options,omitempty"`
	DerivedConfig   *DerivedConfig          `json:"derivedConfig,omitempty"`
}

type FieldListResponse struct {
	Data []FieldResponse `json:"data"`
}

type DraftResponse struct {
	Name   string          `json:"name"`
	Fields []FieldResponse `json:"fields"`
}

type DraftNameRequest struct {
	Name string `json:"name"`
}

type ReorderRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type SchemaResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Fields    []FieldResponse `json:"fields"`
	CreatedAt time.Time       `json:"createdAt"`
}

type SchemaListResponse struct {
	Data []SchemaResponse `json:"data"`
}

type IntegrityErrorResponse struct {
	FieldID string `json:"fieldId"`
	Kind    string `json:"kind"`
	Detail  string `json:"detail"`
}

type IntegrityResponse struct {
	Data []IntegrityErrorResponse `json:"data"`
}

type SessionResponse struct {
	Schema SchemaResponse    `json:"schema"`
	Values map[string]any    `json:"values"`
	Errors map[string]string `json:"errors"`
	Phase  string            `json:"phase"`
}

type ValueRequest struct {
	Value any `json:"value"`
}

type SubmitResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
}

func (r FieldRequest) ToDomain() formsDomain.Field {
	field := formsDomain.Field{
		ID:              shareddomain.ID(r.ID),
		Type:            formsDomain.FieldType(r.Type),
		Label:           r.Label,
		Required:        r.Required,
		DefaultValue:    r.DefaultValue,
		ValidationRules: make([]formsDomain.ValidationRule, len(r.ValidationRules)),
	}

	for i, rule := range r.ValidationRules {
		field.ValidationRules[i] = formsDomain.ValidationRule{
			Type:    formsDomain.RuleType(rule.Type),
			Value:   rule.Value,
			Message: rule.Message,
		}
	}

	if r.Options != nil || field.Type.RequiresOptions() {
		field.Options = make([]formsDomain.SelectOption, len(r.Options))
		for i, o := range r.Options {
			field.Options[i] = formsDomain.SelectOption{Label: o.Label, Value: o.Value}
		}
	}

	if r.DerivedConfig != nil {
		parents := make([]shareddomain.ID, len(r.DerivedConfig.ParentFields))
		for i, p := range r.DerivedConfig.ParentFields {
			parents[i] = shareddomain.ID(p)
		}
		field.DerivedConfig = &formsDomain.DerivedFieldConfig{
			IsDerived:    r.DerivedConfig.IsDerived,
			ParentFields: parents,
			Formula:      r.DerivedConfig.Formula,
		}
	}

	return field
}

func ToFieldResponse(field formsDomain.Field) FieldResponse {
	response := FieldResponse{
		ID:              field.ID.String(),
		Type:            string(field.Type),
		Label:           field.Label,
		Required:        field.Required,
		DefaultValue:    field.DefaultValue,
		ValidationRules: make([]ValidationRuleRequest, len(field.ValidationRules)),
	}

	for i, rule := range field.ValidationRules {
		response.ValidationRules[i] = ValidationRuleRequest{
			Type:    string(rule.Type),
			Value:   rule.Value,
			Message: rule.Message,
		}
	}

	if len(field.Options) > 0 {
		response.Options = make([]SelectOption, len(field.Options))
		for i, o := range field.Options {
			response.Options[i] = SelectOption{Label: o.Label, Value: o.Value}
		}
	}

	if field.DerivedConfig != nil {
		parents := make([]string, len(field.DerivedConfig.ParentFields))
		for i, p := range field.DerivedConfig.ParentFields {
			parents[i] = p.String()
		}
		response.DerivedConfig = &DerivedConfig{
			IsDerived:    field.DerivedConfig.IsDerived,
			ParentFields: parents,
			Formula:      field.DerivedConfig.Formula,
		}
	}

	return response
}

func ToFieldResponses(fields []formsDomain.Field) []FieldResponse {
	result := make([]FieldResponse, len(fields))
	for i, f := range fields {
		result[i] = ToFieldResponse(f)
	}
	return result
}

func ToDraftResponse(view formsDomain.DraftView) DraftResponse {
	return DraftResponse{
		Name:   view.Name,
		Fields: ToFieldResponses(view.Fields),
	}
}

func ToSchemaResponse(schema formsDomain.FormSchema) SchemaResponse {
	return SchemaResponse{
		ID:        schema.ID.String(),
		Name:      schema.Name.String(),
		Fields:    ToFieldResponses(schema.Fields),
		CreatedAt: schema.CreatedAt,
	}
}

func ToIntegrityResponse(errs []formsDomain.IntegrityError) IntegrityResponse {
	response := IntegrityResponse{Data: make([]IntegrityErrorResponse, len(errs))}
	for i, e := range errs {
		response.Data[i] = IntegrityErrorResponse{
			FieldID: e.FieldID.String(),
			Kind:    string(e.Kind),
			Detail:  e.Detail,
		}
	}
	return response
}

func ToSessionResponse(view usecases.SessionView) SessionResponse {
	values := make(map[string]any, len(view.Values))
	for id, v := range view.Values {
		values[id.String()] = v
	}

	return SessionResponse{
		Schema: ToSchemaResponse(view.Schema),
		Values: values,
		Errors: toErrorMap(view.Errors),
		Phase:  string(view.Phase),
	}
}

func ToSubmitResponse(result usecases.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Success: result.Success(),
		Errors:  toErrorMap(result.Errors),
	}
}

func toErrorMap(errs map[shareddomain.ID]string) map[string]string {
	result := make(map[string]string, len(errs))
	for id, message := range errs {
		result[id.String()] = message
	}
	return result
}
