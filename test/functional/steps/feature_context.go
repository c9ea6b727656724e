package steps

import (
	"context"
	"encoding/json"
	"formbuilder-server/cmd/api/wire"
	"formbuilder-server/cmd/config"
	"formbuilder-server/internal/infra/httpserver"
	"formbuilder-server/internal/infra/kv"
	"formbuilder-server/test/functional/driver"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type schemaResponse struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Fields []map[string]any `json:"fields"`
}

type sessionResponse struct {
	Schema schemaResponse    `json:"schema"`
	Values map[string]any    `json:"values"`
	Errors map[string]string `json:"errors"`
	Phase  string            `json:"phase"`
}

type submitResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
}

// FeatureContext runs every scenario against its own in-process server. The
// store outlives server restarts within a scenario.
type FeatureContext struct {
	store     kv.Store
	server    *httptest.Server
	apiDriver *driver.APIDriver
	response  *http.Response
	body      []byte
	fieldIDs  map[string]string
	schemaIDs map[string]string
	schemas   []schemaResponse
	session   sessionResponse
	submit    submitResponse
	require   *require.Assertions
	t         godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Given(`^the service is healthy$`, fc.theServiceIsHealthy)
	ctx.When(`^the server restarts on the same store$`, fc.theServerRestartsOnTheSameStore)

	// Builder steps
	ctx.Given(`^a draft named "([^"]*)"$`, fc.aDraftNamed)
	ctx.Given(`^a required text field "([^"]*)"$`, fc.aRequiredTextField)
	ctx.Given(`^a (text|number|date|textarea) field "([^"]*)"$`, fc.aField)
	ctx.Given(`^a text field "([^"]*)" with an email rule "([^"]*)"$`, fc.aTextFieldWithAnEmailRule)
	ctx.Given(`^a derived (text|number) field "([^"]*)" depending on "([^"]*)" with formula "([^"]*)"$`, fc.aDerivedFieldDependingOnWithFormula)
	ctx.When(`^I save the draft$`, fc.iSaveTheDraft)

	// Schema steps
	ctx.When(`^I list the saved schemas$`, fc.iListTheSavedSchemas)
	ctx.Then(`^the list should contain the schema "([^"]*)" with (\d+) fields$`, fc.theListShouldContainTheSchemaWithFields)
	ctx.Then(`^the list should not contain the schema "([^"]*)"$`, fc.theListShouldNotContainTheSchema)
	ctx.When(`^I get the saved schema "([^"]*)"$`, fc.iGetTheSavedSchema)
	ctx.When(`^I delete the saved schema "([^"]*)"$`, fc.iDeleteTheSavedSchema)
	ctx.When(`^I check the integrity of the saved schema "([^"]*)"$`, fc.iCheckTheIntegrityOfTheSavedSchema)
	ctx.Then(`^no integrity problems should be reported$`, fc.noIntegrityProblemsShouldBeReported)

	// Preview steps
	ctx.When(`^I preview the draft$`, fc.iPreviewTheDraft)
	ctx.When(`^I preview the saved schema "([^"]*)"$`, fc.iPreviewTheSavedSchema)
	ctx.Then(`^the preview fields should be "([^"]*)"$`, fc.thePreviewFieldsShouldBe)
	ctx.When(`^I set "([^"]*)" to "([^"]*)"$`, fc.iSetTo)
	ctx.Then(`^the preview value of "([^"]*)" should be "([^"]*)"$`, fc.thePreviewValueOfShouldBe)
	ctx.When(`^I submit the preview$`, fc.iSubmitThePreview)
	ctx.Then(`^the submission should succeed$`, fc.theSubmissionShouldSucceed)
	ctx.Then(`^the submission should fail with "([^"]*)" on "([^"]*)"$`, fc.theSubmissionShouldFailWithOn)
	ctx.Then(`^the submission should not report "([^"]*)"$`, fc.theSubmissionShouldNotReport)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		fc.store = kv.NewMemoryStore()
		fc.start()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.stop()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.body = nil
	fc.fieldIDs = make(map[string]string)
	fc.schemaIDs = make(map[string]string)
	fc.schemas = nil
	fc.session = sessionResponse{}
	fc.submit = submitResponse{}
}

func (fc *FeatureContext) start() {
	cfg, err := config.Load(viper.New())
	fc.require.NoError(err)

	forms, err := wire.InitializeFormsModuleWithStore(fc.store, cfg)
	fc.require.NoError(err)

	server := httpserver.NewServer(httpserver.Config{Addr: cfg.HTTP.Addr}, forms.Controllers()...)
	fc.server = httptest.NewServer(server.Handler())
	fc.apiDriver = driver.NewAPIDriver(fc.server.URL)
}

func (fc *FeatureContext) stop() {
	if fc.server != nil {
		fc.server.Close()
		fc.server = nil
	}
}

// record keeps the response and drains its body so later steps can decode
// it more than once.
func (fc *FeatureContext) record(resp *http.Response, err error) {
	fc.require.NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	fc.require.NoError(err)

	fc.response = resp
	fc.body = body
}

func (fc *FeatureContext) decodeBody(target any) {
	fc.require.NoError(json.Unmarshal(fc.body, target), string(fc.body))
}

func (fc *FeatureContext) fieldID(label string) string {
	id, ok := fc.fieldIDs[label]
	fc.require.True(ok, "no field labelled %q in this scenario", label)
	return id
}

func (fc *FeatureContext) schemaID(name string) string {
	id, ok := fc.schemaIDs[name]
	fc.require.True(ok, "no schema named %q was saved in this scenario", name)
	return id
}
