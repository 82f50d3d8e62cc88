package spatial

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	indexLabel     = "index"
	queryTypeLabel = "query_type"
)

var (
	spatialObjectCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spatial_object_count",
		Help: "The number of objects registered in a spatial index.",
	}, []string{indexLabel})

	spatialInsertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_inserts_total",
		Help: "The total number of spatial index insertions.",
	}, []string{indexLabel})

	spatialRemovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_removes_total",
		Help: "The total number of spatial index removals.",
	}, []string{indexLabel})

	spatialUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_updates_total",
		Help: "The total number of spatial index updates.",
	}, []string{indexLabel})

	spatialQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_queries_total",
		Help: "The total number of spatial index queries.",
	}, []string{indexLabel, queryTypeLabel})

	spatialRebuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_rebuilds_total",
		Help: "The total number of world-bounds rebuilds.",
	}, []string{indexLabel})

	spatialTreeNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spatial_tree_nodes",
		Help: "The number of quadtree nodes backing a spatial index.",
	}, []string{indexLabel})
)

func instrumentInsert(index string, objects int) {
	spatialInsertsTotal.With(prometheus.Labels{indexLabel: index}).Inc()
	spatialObjectCount.With(prometheus.Labels{indexLabel: index}).Set(float64(objects))
}

func instrumentRemove(index string, objects int) {
	spatialRemovesTotal.With(prometheus.Labels{indexLabel: index}).Inc()
	spatialObjectCount.With(prometheus.Labels{indexLabel: index}).Set(float64(objects))
}

func instrumentUpdate(index string) {
	spatialUpdatesTotal.With(prometheus.Labels{indexLabel: index}).Inc()
}

func instrumentQuery(index, queryType string) {
	spatialQueriesTotal.With(prometheus.Labels{
		indexLabel:     index,
		queryTypeLabel: queryType,
	}).Inc()
}

func instrumentClear(index string) {
	spatialObjectCount.With(prometheus.Labels{indexLabel: index}).Set(0)
}

func instrumentRebuild(index string, nodes int) {
	spatialRebuildsTotal.With(prometheus.Labels{indexLabel: index}).Inc()
	spatialTreeNodes.With(prometheus.Labels{indexLabel: index}).Set(float64(nodes))
}
