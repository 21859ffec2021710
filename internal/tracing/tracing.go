package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

// Init sets the global opentracing tracer to a const-sampled Jaeger tracer.
// The returned closer flushes buffered spans and must be closed on shutdown.
func Init(cfg config) (io.Closer, error) {
	c := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := c.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
