package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/everhub/taskmeta/pkg/application"
	"github.com/everhub/taskmeta/pkg/configuration"
)

// PrometheusController exposes the default registry on the configured debug
// path. Scrape errors are logged and the response continues with whatever
// collectors did succeed.
type PrometheusController struct {
	path    string
	handler http.Handler
}

func NewPrometheusController(conf *configuration.Configuration) application.Controller {
	path := conf.Prometheus.Path
	if path == "" {
		path = "/debug/metrics"
	}

	opts := promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError}
	if logger := conf.Logger(); logger != nil {
		opts.ErrorLog = logger
	}
	return &PrometheusController{
		path:    path,
		handler: promhttp.HandlerFor(prometheus.DefaultGatherer, opts),
	}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, c.handler).Methods(http.MethodGet)
}
