package observability

import (
	"context"
	"fmt"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/metrics"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	ServiceName    string
	JaegerEndpoint string
	// Registerer receives the otel prometheus collector. Defaults to the
	// global prometheus registerer.
	Registerer promclient.Registerer
	// SpanProcessors are attached in addition to the Jaeger exporter.
	SpanProcessors []sdktrace.SpanProcessor
}

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer
	jobCounter     otelmetric.Int64Counter
	jobDuration    otelmetric.Float64Histogram
}

func New(opts Options) (*Observability, error) {
	if opts.ServiceName == "" {
		opts.ServiceName = "assessment-workers"
	}

	promOpts := []prometheus.Option{}
	if opts.Registerer != nil {
		promOpts = append(promOpts, prometheus.WithRegisterer(opts.Registerer))
	}
	exporter, err := prometheus.New(promOpts...)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", opts.ServiceName))

	meterProvider := metric.NewMeterProvider(metric.WithReader(exporter), metric.WithResource(res))
	otel.SetMeterProvider(meterProvider)

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if opts.JaegerEndpoint != "" {
		jaegerExp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(opts.JaegerEndpoint)))
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(jaegerExp))
	}
	for _, sp := range opts.SpanProcessors {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(sp))
	}
	tracerProvider := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tracerProvider)

	meter := meterProvider.Meter(opts.ServiceName)

	jobCounter, err := meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)
	if err != nil {
		return nil, err
	}

	jobDuration, err := meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Observability{
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
		meter:          meter,
		tracer:         tracerProvider.Tracer(opts.ServiceName),
		jobCounter:     jobCounter,
		jobDuration:    jobDuration,
	}, nil
}

// StartSpan starts a child span of whatever span ctx carries. A nil
// Observability returns a no-op span.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if o == nil || o.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o == nil || o.jobCounter == nil {
		return
	}
	o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o == nil || o.jobDuration == nil {
		return
	}
	o.jobDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

// JobSpan tracks one job from activation to completion.
type JobSpan struct {
	o        *Observability
	ctx      context.Context
	span     trace.Span
	taskType string
	start    time.Time
}

// StartJob opens the job span and bumps the active-jobs gauge. The returned
// JobSpan must be ended exactly once.
func (o *Observability) StartJob(ctx context.Context, taskType string, jobKey int64) (context.Context, *JobSpan) {
	ctx, span := o.StartSpan(ctx, taskType,
		attribute.String("zeebe.task_type", taskType),
		attribute.Int64("zeebe.job_key", jobKey),
	)
	metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
	return ctx, &JobSpan{o: o, ctx: ctx, span: span, taskType: taskType, start: time.Now()}
}

// End records the outcome on the span and in the job metrics.
func (j *JobSpan) End(err error) {
	elapsed := time.Since(j.start)
	status := "completed"

	metrics.WorkerJobsActive.WithLabelValues(j.taskType).Dec()
	metrics.WorkerJobDuration.WithLabelValues(j.taskType).Observe(elapsed.Seconds())

	if err != nil {
		status = "failed"
		code := errors.CodeOf(err)
		metrics.WorkerJobsFailed.WithLabelValues(j.taskType, string(code)).Inc()
		j.span.RecordError(err)
		j.span.SetStatus(codes.Error, string(code))
	} else {
		metrics.WorkerJobsCompleted.WithLabelValues(j.taskType).Inc()
		j.span.SetStatus(codes.Ok, "")
	}

	j.o.RecordJobProcessed(j.ctx, j.taskType, status)
	j.o.RecordJobDuration(j.ctx, j.taskType, elapsed, status)
	j.span.End()
}

// Shutdown flushes pending spans and metrics.
func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil {
		return nil
	}
	var firstErr error
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
