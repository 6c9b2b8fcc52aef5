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

	"github.com/aclements/go-moremath/stats"
)

// SilvermanBandwidth returns Silverman's rule-of-thumb bandwidth
// 1.06·σ·n^(-1/5) for a Gaussian kernel. It is Undefined when the standard
// deviation is Undefined or not strictly positive.
func SilvermanBandwidth(xs []float64) Statistic {
	dist, ok := fitNormal(xs)
	if !ok {
		return Undefined()
	}
	return Of(1.06 * dist.Sigma * math.Pow(float64(len(xs)), -0.2))
}

// Density returns the Gaussian kernel density estimate of the sample at the
// point at, using SilvermanBandwidth. It is Undefined if n < 2, the standard
// deviation is not strictly positive, or at is NaN.
func Density(xs []float64, at float64) Statistic {
	if math.IsNaN(at) {
		return Undefined()
	}
	h, ok := SilvermanBandwidth(xs).Value()
	if !ok {
		return Undefined()
	}
	kde := &stats.KDE{
		// stats.Sample methods may sort Xs in place.
		Sample:    stats.Sample{Xs: append([]float64(nil), xs...)},
		Kernel:    stats.GaussianKernel,
		Bandwidth: h,
	}
	return Of(kde.PDF(at))
}
