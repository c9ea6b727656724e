package steps

import (
	"net/http"
	"strings"
)

// Builder step implementations
func (fc *FeatureContext) aDraftNamed(name string) error {
	fc.record(fc.apiDriver.SetDraftName(name))
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.body))
	return nil
}

func (fc *FeatureContext) aRequiredTextField(label string) error {
	return fc.addField(map[string]any{
		"type":     "text",
		"label":    label,
		"required": true,
		"validationRules": []map[string]any{
			{"type": "required", "message": label + " is required"},
		},
	})
}

func (fc *FeatureContext) aField(fieldType, label string) error {
	return fc.addField(map[string]any{
		"type":            fieldType,
		"label":           label,
		"validationRules": []map[string]any{},
	})
}

func (fc *FeatureContext) aTextFieldWithAnEmailRule(label, message string) error {
	return fc.addField(map[string]any{
		"type":  "text",
		"label": label,
		"validationRules": []map[string]any{
			{"type": "email", "message": message},
		},
	})
}

func (fc *FeatureContext) aDerivedFieldDependingOnWithFormula(fieldType, label, parents, formula string) error {
	parentIDs := []string{}
	for _, parent := range strings.Split(parents, ",") {
		parentIDs = append(parentIDs, fc.fieldID(strings.TrimSpace(parent)))
	}

	return fc.addField(map[string]any{
		"type":            fieldType,
		"label":           label,
		"validationRules": []map[string]any{},
		"derivedConfig": map[string]any{
			"isDerived":    true,
			"parentFields": parentIDs,
			"formula":      formula,
		},
	})
}

func (fc *FeatureContext) iSaveTheDraft() error {
	fc.record(fc.apiDriver.SaveDraft())
	if fc.response.StatusCode != http.StatusCreated {
		return nil
	}

	var schema schemaResponse
	fc.decodeBody(&schema)
	fc.require.NotEmpty(schema.ID)
	fc.schemaIDs[schema.Name] = schema.ID
	return nil
}

func (fc *FeatureContext) addField(field map[string]any) error {
	fc.record(fc.apiDriver.AddField(field))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))

	var added map[string]any
	fc.decodeBody(&added)
	id, ok := added["id"].(string)
	fc.require.True(ok)
	fc.require.NotEmpty(id)
	fc.fieldIDs[field["label"].(string)] = id
	return nil
}
