package sysbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var busCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hwisolation_bus_calls_total",
		Help: "D-Bus calls issued, by method and result",
	},
	[]string{"method", "result"},
)

func observeCall(method string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	busCalls.WithLabelValues(method, result).Inc()
}
