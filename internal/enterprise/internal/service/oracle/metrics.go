// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oracle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "enterprise",
		Subsystem: "oracle",
		Name:      "request_duration_seconds",
		Help:      "企业接口调用耗时",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource", "status"},
)

var cacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "enterprise",
		Subsystem: "oracle",
		Name:      "cache_requests_total",
		Help:      "企业接口缓存命中情况",
	},
	[]string{"resource", "result"},
)
