package main

import (
	"context"
	"errors"
	"fmt"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/logger"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
)

const _usage = `usage: formctl <command> [flags]

commands:
  list                                  list saved schemas
  show --schema ID                      print the fields of a schema
  fill --schema ID --set label=value    fill a schema and submit it
`

var (
	errUsage        = errors.New("invalid usage")
	errSubmitFailed = errors.New("submission failed")
)

type app struct {
	schemas   usecases.SchemaService
	evaluator *derived.Evaluator
	log       logger.Logger
	out       io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, _usage)
		return errUsage
	}

	switch args[0] {
	case "list":
		return a.list(ctx)
	case "show":
		return a.show(ctx, args[1:])
	case "fill":
		return a.fill(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, _usage)
		return nil
	default:
		fmt.Fprint(a.out, _usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func (a *app) list(ctx context.Context) error {
	schemas, err := a.schemas.ListSchemas(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFIELDS\tCREATED")
	for _, schema := range schemas {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			schema.ID, schema.Name, len(schema.Fields), schema.CreatedAt.UTC().Format(time.RFC3339))
	}
	return w.Flush()
}

func (a *app) show(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
	flags.SetOutput(a.out)
	schemaID := flags.String("schema", "", "id of the saved schema")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	schema, err := a.load(ctx, *schemaID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", schema.Name, schema.ID)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tTYPE\tREQUIRED\tDERIVED")
	for _, field := range schema.Fields {
		formula := "-"
		if field.IsDerived() {
			formula = field.DerivedConfig.Formula
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", field.Label, field.Type, field.Required, formula)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, issue := range domain.ValidateSchemaIntegrity(schema) {
		fmt.Fprintf(a.out, "warning: %s\n", issue.Error())
	}
	return nil
}

// fill opens a preview session on a saved schema, applies every --set in
// order and submits. Derived values are printed before the outcome.
func (a *app) fill(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("fill", pflag.ContinueOnError)
	flags.SetOutput(a.out)
	schemaID := flags.String("schema", "", "id of the saved schema")
	assignments := flags.StringArray("set", nil, "label=value, may be repeated")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	schema, err := a.load(ctx, *schemaID)
	if err != nil {
		return err
	}

	if err := usecases.CheckFillable(domain.ValidateSchemaIntegrity(schema)); err != nil {
		a.log.Errorw("opening fill session", "schema_id", schema.ID.String(), "error", err)
		return err
	}

	session := usecases.NewSession(schema, a.evaluator)
	for _, assignment := range *assignments {
		label, raw, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("%w: --set %q is not label=value", errUsage, assignment)
		}
		field, found := schema.FieldByLabel(strings.TrimSpace(label))
		if !found {
			return fmt.Errorf("%w: no field labelled %q, have %s",
				usecases.ErrFieldNotFound, label, strings.Join(schema.Labels(), ", "))
		}
		if field.IsDerived() {
			a.log.Warnw("ignoring value for derived field", "label", field.Label)
			continue
		}
		if err := session.SetValue(field.ID, parseInput(field, raw)); err != nil {
			return err
		}
	}

	for _, field := range schema.DerivedFields() {
		fmt.Fprintf(a.out, "%s = %s\n", field.Label, domain.FormatValue(session.Value(field.ID)))
	}

	result := session.Submit()
	if result.Success() {
		fmt.Fprintln(a.out, "submitted")
		a.log.Infow("form submitted", "schema_id", schema.ID.String())
		return nil
	}

	for _, field := range schema.Fields {
		if message, ok := result.Errors[field.ID]; ok {
			fmt.Fprintf(a.out, "error: %s: %s\n", field.Label, message)
		}
	}
	return errSubmitFailed
}

func (a *app) load(ctx context.Context, id string) (domain.FormSchema, error) {
	if strings.TrimSpace(id) == "" {
		return domain.FormSchema{}, fmt.Errorf("%w: --schema is required", errUsage)
	}
	schema, err := a.schemas.GetSchema(ctx, shareddomain.ID(id))
	if err != nil {
		a.log.Errorw("loading schema", "schema_id", id, "error", err)
		return domain.FormSchema{}, err
	}
	return schema, nil
}

// parseInput turns command line text into the value a browser control
// would produce for the field.
func parseInput(field domain.Field, raw string) any {
	switch field.Type {
	case domain.FieldTypeNumber:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return n
		}
	case domain.FieldTypeCheckbox:
		if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return b
		}
	}
	return raw
}
