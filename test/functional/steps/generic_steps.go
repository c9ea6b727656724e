package steps

import "net/http"

// Generic step implementations
func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code: %s", string(fc.body))
	return nil
}

func (fc *FeatureContext) theServiceIsHealthy() error {
	fc.record(fc.apiDriver.Health())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	return nil
}

// theServerRestartsOnTheSameStore drops every in-memory service, including
// the draft and the preview session. Only what was saved survives.
func (fc *FeatureContext) theServerRestartsOnTheSameStore() error {
	fc.stop()
	fc.start()
	return nil
}
