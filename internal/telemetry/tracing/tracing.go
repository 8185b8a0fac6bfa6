package tracing

import (
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fitlog-backend")

// EndSpanWithErrCheck records the error on the span, if any, and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro.
// Returns a shutdown function to be deferred by the caller.
// Export target and service name come from OTEL_* / HONEYCOMB_* env vars.
func HoneycombSetup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	log.Debugf("honeycomb tracing set up for service: %s", serviceName)
	return otelShutdown, nil
}
