package usecases

import (
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const _metricPrefix = "formbuilder_server"

var (
	schemasSavedTotal   metric.Int64Counter
	schemasDeletedTotal metric.Int64Counter
	submissionsTotal    metric.Int64Counter
	metricsOnce         sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("formbuilder-server")

		var err error
		schemasSavedTotal, err = meter.Int64Counter(
			fmt.Sprintf("%s.%s", _metricPrefix, "schemas.saved.total"),
			metric.WithDescription("Total number of form schemas saved from the draft"),
		)
		if err != nil {
			panic(err)
		}

		schemasDeletedTotal, err = meter.Int64Counter(
			fmt.Sprintf("%s.%s", _metricPrefix, "schemas.deleted.total"),
			metric.WithDescription("Total number of saved form schemas deleted"),
		)
		if err != nil {
			panic(err)
		}

		submissionsTotal, err = meter.Int64Counter(
			fmt.Sprintf("%s.%s", _metricPrefix, "preview.submissions.total"),
			metric.WithDescription("Total number of preview submissions by outcome"),
		)
		if err != nil {
			panic(err)
		}
	})
}
