package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HistogramBuckets covers fast API responses through slow SMTP dispatches (ms).
var HistogramBuckets = []float64{
	25, 50, 75, 100, 150, 200, 300, 400, 500,
	750, 1000, 1250, 1500, 1750, 2000,
	2500, 3000, 4000, 5000, 7500, 10000, 15000,
	30000, 60000,
}

// Prometheus collects per-request counters and latency histograms and exposes
// them on a dedicated listener.
type Prometheus struct {
	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec
	log    *zap.SugaredLogger
}

type NewPrometheusOptions struct {
	Subsystem string
	Logger    *zap.SugaredLogger
}

func NewPrometheus(options NewPrometheusOptions) *Prometheus {
	subsystem := options.Subsystem
	if subsystem == "" {
		subsystem = "paynotify"
	}
	p := &Prometheus{log: options.Logger}
	p.reqCnt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "How many HTTP requests processed, partitioned by status code, method and handler.",
		},
		[]string{"code", "method", "handler"},
	)
	p.reqDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "request_duration_ms",
			Help:      "The HTTP request latency in milliseconds.",
			Buckets:   HistogramBuckets,
		},
		[]string{"code", "method", "handler"},
	)
	prometheus.MustRegister(p.reqCnt, p.reqDur)
	return p
}

// Serve exposes /metrics on its own listener so scrapes stay off the API port.
func (p *Prometheus) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			if p.log != nil {
				p.log.Errorw("metrics listener stopped", "addr", addr, "err", err)
			}
		}
	}()
}

// Use attaches the collection middleware to the engine.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.HandlerFunc())
}

func (p *Prometheus) HandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		p.reqCnt.WithLabelValues(status, c.Request.Method, handler).Inc()
		p.reqDur.WithLabelValues(status, c.Request.Method, handler).Observe(elapsed)
	}
}
