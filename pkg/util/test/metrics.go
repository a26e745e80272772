package test

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// GetCounterVecValue reads the counter of metric with the given label values.
func GetCounterVecValue(metric *prometheus.CounterVec, labels ...string) (float64, error) {
	m := &dto.Metric{}
	if err := metric.WithLabelValues(labels...).Write(m); err != nil {
		return 0, err
	}
	return m.Counter.GetValue(), nil
}

// GetGaugeVecValue reads the gauge of metric with the given label values.
func GetGaugeVecValue(metric *prometheus.GaugeVec, labels ...string) (float64, error) {
	m := &dto.Metric{}
	if err := metric.WithLabelValues(labels...).Write(m); err != nil {
		return 0, err
	}
	return m.Gauge.GetValue(), nil
}
