// SPDX-License-Identifier: GPL-3.0-or-later

package decl

import (
	"fmt"
	"strings"
)

// MetricKind is the type of an express metric.
type MetricKind int

const (
	MetricUnknown MetricKind = iota
	MetricCounter
	MetricHistogram
	MetricCounterWithUID
	MetricHistogramWithUID
)

var metricKindNames = map[MetricKind]string{
	MetricUnknown:          "unknown",
	MetricCounter:          "counter",
	MetricHistogram:        "histogram",
	MetricCounterWithUID:   "counter_with_uid",
	MetricHistogramWithUID: "histogram_with_uid",
}

// String returns the generated-code symbol of the kind, e.g. METRIC_TYPE_COUNTER.
func (k MetricKind) String() string {
	name, ok := metricKindNames[k]
	if !ok {
		return fmt.Sprintf("METRIC_TYPE_%d", int(k))
	}
	return "METRIC_TYPE_" + strings.ToUpper(name)
}

func (k MetricKind) Name() string {
	return metricKindNames[k]
}

// Known reports whether k names a concrete metric type.
func (k MetricKind) Known() bool {
	_, ok := metricKindNames[k]
	return ok && k != MetricUnknown
}

func ParseMetricKind(s string) (MetricKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "metric_type_")
	for k, v := range metricKindNames {
		if v == name && k != MetricUnknown {
			return k, nil
		}
	}
	return MetricUnknown, fmt.Errorf("unknown metric type '%s'", s)
}

// MetricDeclaration is one express metric as read from the catalog.
type MetricDeclaration struct {
	ID   string
	Kind MetricKind
}
