//
// Copyright 2026 The StatisticsVisualizer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package descstat

import (
	"math"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/stat"
)

// WeightedMean returns Σ(vᵢ·wᵢ)/Σwᵢ.
//
// It is Undefined if values and weights differ in length, are empty, contain
// a NaN or an infinity, if any weight is negative, or if the weights do not
// sum to a strictly positive value. A zero weight removes the corresponding
// value from the mean but still counts when the lengths are compared.
func WeightedMean(values, weights []float64) Statistic {
	if log.V(2) {
		log.Infof("WeightedMean: values=%v weights=%v", values, weights)
	}
	if len(values) != len(weights) {
		log.V(1).Infof("WeightedMean: size mismatch (values: %d, weights: %d)", len(values), len(weights))
		return Undefined()
	}
	if len(values) == 0 {
		log.V(1).Infof("WeightedMean: empty data")
		return Undefined()
	}

	var sumWeights float64
	for i := range values {
		if math.IsNaN(values[i]) || math.IsNaN(weights[i]) {
			log.V(1).Infof("WeightedMean: NaN detected at index %d", i)
			return Undefined()
		}
		if math.IsInf(values[i], 0) || math.IsInf(weights[i], 0) {
			log.V(1).Infof("WeightedMean: infinity detected at index %d", i)
			return Undefined()
		}
		if weights[i] < 0 {
			log.V(1).Infof("WeightedMean: negative weight %f at index %d", weights[i], i)
			return Undefined()
		}
		sumWeights += weights[i]
	}
	if !(sumWeights > 0) {
		log.V(1).Infof("WeightedMean: non-positive sum of weights %f", sumWeights)
		return Undefined()
	}

	result := stat.Mean(values, weights)
	log.V(2).Infof("WeightedMean: sum of weights %f, result %f", sumWeights, result)
	return Of(result)
}
