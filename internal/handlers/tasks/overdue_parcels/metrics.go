package overdue_parcels

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OverdueParcelsGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "overdue_parcels",
		Help: "Number of shipped parcels past their estimated delivery date",
	},
)
