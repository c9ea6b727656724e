package steps

import (
	"fmt"
	"net/http"
	"strings"
)

// Preview step implementations
func (fc *FeatureContext) iPreviewTheDraft() error {
	fc.record(fc.apiDriver.PreviewDraft())
	fc.keepSession(http.StatusCreated)
	return nil
}

func (fc *FeatureContext) iPreviewTheSavedSchema(name string) error {
	fc.record(fc.apiDriver.PreviewSchema(fc.schemaID(name)))
	fc.keepSession(http.StatusCreated)
	return nil
}

func (fc *FeatureContext) thePreviewFieldsShouldBe(labels string) error {
	actual := make([]string, 0, len(fc.session.Schema.Fields))
	for _, field := range fc.session.Schema.Fields {
		actual = append(actual, fmt.Sprint(field["label"]))
	}
	fc.require.Equal(labels, strings.Join(actual, ", "))
	return nil
}

func (fc *FeatureContext) iSetTo(label, value string) error {
	fc.record(fc.apiDriver.SetValue(fc.fieldID(label), value))
	fc.keepSession(http.StatusOK)
	return nil
}

func (fc *FeatureContext) thePreviewValueOfShouldBe(label, expected string) error {
	value, ok := fc.session.Values[fc.fieldID(label)]
	fc.require.True(ok, "no value for %q", label)
	fc.require.Equal(expected, fmt.Sprint(value))
	return nil
}

func (fc *FeatureContext) iSubmitThePreview() error {
	fc.record(fc.apiDriver.Submit())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, string(fc.body))
	fc.decodeBody(&fc.submit)
	return nil
}

func (fc *FeatureContext) theSubmissionShouldSucceed() error {
	fc.require.True(fc.submit.Success, "errors: %v", fc.submit.Errors)
	fc.require.Empty(fc.submit.Errors)
	return nil
}

func (fc *FeatureContext) theSubmissionShouldFailWithOn(message, label string) error {
	fc.require.False(fc.submit.Success)
	fc.require.Equal(message, fc.submit.Errors[fc.fieldID(label)])
	return nil
}

func (fc *FeatureContext) theSubmissionShouldNotReport(label string) error {
	fc.require.NotContains(fc.submit.Errors, fc.fieldID(label))
	return nil
}

func (fc *FeatureContext) keepSession(expected int) {
	if fc.response.StatusCode != expected {
		return
	}
	fc.session = sessionResponse{}
	fc.decodeBody(&fc.session)
}
