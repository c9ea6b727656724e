package steps

import (
	"net/http"
)

// Schema step implementations
func (fc *FeatureContext) iListTheSavedSchemas() error {
	fc.record(fc.apiDriver.ListSchemas())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.body))

	var list struct {
		Data []schemaResponse `json:"data"`
	}
	fc.decodeBody(&list)
	fc.schemas = list.Data
	return nil
}

func (fc *FeatureContext) theListShouldContainTheSchemaWithFields(name string, fields int) error {
	for _, schema := range fc.schemas {
		if schema.Name == name {
			fc.require.Len(schema.Fields, fields)
			fc.require.Equal(fc.schemaID(name), schema.ID)
			return nil
		}
	}
	fc.require.Failf("schema not listed", "no schema named %q in %d schemas", name, len(fc.schemas))
	return nil
}

func (fc *FeatureContext) theListShouldNotContainTheSchema(name string) error {
	for _, schema := range fc.schemas {
		fc.require.NotEqual(name, schema.Name)
	}
	return nil
}

func (fc *FeatureContext) iGetTheSavedSchema(name string) error {
	fc.record(fc.apiDriver.GetSchema(fc.schemaID(name)))
	return nil
}

func (fc *FeatureContext) iDeleteTheSavedSchema(name string) error {
	fc.record(fc.apiDriver.DeleteSchema(fc.schemaID(name)))
	return nil
}

func (fc *FeatureContext) iCheckTheIntegrityOfTheSavedSchema(name string) error {
	fc.record(fc.apiDriver.CheckIntegrity(fc.schemaID(name)))
	return nil
}

func (fc *FeatureContext) noIntegrityProblemsShouldBeReported() error {
	var report struct {
		Data []map[string]any `json:"data"`
	}
	fc.decodeBody(&report)
	fc.require.Empty(report.Data)
	return nil
}
