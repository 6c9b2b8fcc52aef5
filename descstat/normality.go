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
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample size limits of the Shapiro-Wilk approximation.
const (
	shapiroWilkMinN = 3
	shapiroWilkMaxN = 5000
	// The χ² test needs at least four bins to keep one degree of freedom
	// after estimating the mean and standard deviation.
	chiSquareMinN = 5
)

// TestResult holds the statistic of a goodness-of-fit test together with its
// p-value. Both are Undefined when the test cannot be run on the sample.
type TestResult struct {
	Statistic Statistic
	PValue    Statistic
}

func undefinedTest() TestResult {
	return TestResult{Statistic: Undefined(), PValue: Undefined()}
}

// poly evaluates c[0] + c[1]·x + c[2]·x² + ...
func poly(c []float64, x float64) float64 {
	result := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

// Polynomial coefficients of Royston's (1992) approximation of the
// Shapiro-Wilk weights and of the distribution of W.
var (
	swAn      = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swAn1     = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swGamma   = []float64{-2.273, 0.459}
	swSmallMu = []float64{0.5440, -0.39978, 0.025054, -0.0006714}
	swSmallSd = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swLargeMu = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swLargeSd = []float64{-0.4803, -0.082676, 0.0030302}
)

// shapiroWilkCoefficients returns the antisymmetric weights a₁..aₙ applied to
// the order statistics.
func shapiroWilkCoefficients(n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0], a[2] = -math.Sqrt2/2, math.Sqrt2/2
		return a
	}

	m := make([]float64, n)
	var sumM2 float64
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		sumM2 += m[i] * m[i]
	}
	rsn := 1 / math.Sqrt(float64(n))
	aN := m[n-1]/math.Sqrt(sumM2) + poly(swAn, rsn)

	if n <= 5 {
		phi := (sumM2 - 2*m[n-1]*m[n-1]) / (1 - 2*aN*aN)
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
		a[0], a[n-1] = -aN, aN
		return a
	}

	aN1 := m[n-2]/math.Sqrt(sumM2) + poly(swAn1, rsn)
	phi := (sumM2 - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*aN*aN - 2*aN1*aN1)
	for i := 2; i < n-2; i++ {
		a[i] = m[i] / math.Sqrt(phi)
	}
	a[0], a[1], a[n-2], a[n-1] = -aN, -aN1, aN1, aN
	return a
}

// shapiroWilkPValue returns Royston's normal approximation of the upper tail
// probability of W for a sample of size n.
func shapiroWilkPValue(w float64, n int) float64 {
	if n == 3 {
		// Exact distribution of W for n = 3.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return clampProbability(p)
	}
	nf := float64(n)
	y := math.Log(1 - w)
	var mu, sigma float64
	if n <= 11 {
		gamma := poly(swGamma, nf)
		if y >= gamma {
			return 0
		}
		y = -math.Log(gamma - y)
		mu = poly(swSmallMu, nf)
		sigma = math.Exp(poly(swSmallSd, nf))
	} else {
		ln := math.Log(nf)
		mu = poly(swLargeMu, ln)
		sigma = math.Exp(poly(swLargeSd, ln))
	}
	return clampProbability(distuv.Normal{Mu: mu, Sigma: sigma}.Survival(y))
}

// ShapiroWilkTest runs the Shapiro-Wilk test of normality using Royston's
// (1992) approximation of the weights and of the null distribution of W.
//
// W lies in (0, 1]; values close to 1 are consistent with a normal sample.
// The test is Undefined unless 3 ≤ n ≤ 5000 and the sample is not constant.
func ShapiroWilkTest(xs []float64) TestResult {
	n := len(xs)
	if n < shapiroWilkMinN || n > shapiroWilkMaxN {
		return undefinedTest()
	}
	s := sortedCopy(xs)
	if s[n-1]-s[0] == 0 || math.IsNaN(s[n-1]-s[0]) {
		return undefinedTest()
	}

	mean := Mean(s).OrElse(0)
	ss := sumOfSquaredDeviations(s, mean)
	a := shapiroWilkCoefficients(n)
	var num float64
	for i := range s {
		num += a[i] * s[i]
	}
	w := num * num / ss
	if w > 1 {
		w = 1
	}
	return TestResult{Statistic: Of(w), PValue: Of(shapiroWilkPValue(w, n))}
}

// ShapiroWilk returns the W statistic of ShapiroWilkTest.
func ShapiroWilk(xs []float64) Statistic {
	return ShapiroWilkTest(xs).Statistic
}

// fitNormal returns the normal distribution with the sample's mean and
// standard deviation, or false if the standard deviation is Undefined, zero
// or NaN.
func fitNormal(xs []float64) (distuv.Normal, bool) {
	mean, ok := Mean(xs).Value()
	if !ok {
		return distuv.Normal{}, false
	}
	sd, ok := StandardDeviation(xs, mean).Value()
	if !ok || !(sd > 0) || math.IsInf(sd, 0) {
		return distuv.Normal{}, false
	}
	return distuv.Normal{Mu: mean, Sigma: sd}, true
}

// ChiSquareBins returns the number of bins used by ChiSquareTest for a
// sample of size n: ⌈log₂ n⌉ + 1 (Sturges' rule).
func ChiSquareBins(n int) int {
	if n < 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// ChiSquareTest runs Pearson's χ² goodness-of-fit test of the sample against
// the normal distribution with the sample's mean and standard deviation.
//
// The real line is split into k = ChiSquareBins(n) bins of equal probability
// under the fitted normal, so that every bin expects n/k observations. An
// observation equal to a bin boundary belongs to the upper bin. The p-value
// uses k-3 degrees of freedom: one for the total and two for the estimated
// parameters. The test is Undefined if n < 5 or the standard deviation is
// not strictly positive.
func ChiSquareTest(xs []float64) TestResult {
	n := len(xs)
	if n < chiSquareMinN {
		return undefinedTest()
	}
	dist, ok := fitNormal(xs)
	if !ok {
		return undefinedTest()
	}

	k := ChiSquareBins(n)
	boundaries := make([]float64, k-1)
	for i := range boundaries {
		boundaries[i] = dist.Quantile(float64(i+1) / float64(k))
	}
	observed := make([]int, k)
	for _, x := range xs {
		bin := 0
		for bin < len(boundaries) && boundaries[bin] <= x {
			bin++
		}
		observed[bin]++
	}

	expected := float64(n) / float64(k)
	var chi2 float64
	for _, o := range observed {
		d := float64(o) - expected
		chi2 += d * d / expected
	}
	dof := k - 3
	log.V(2).Infof("ChiSquareTest: n=%d bins=%d observed=%v chi2=%f dof=%d", n, k, observed, chi2, dof)
	p := distuv.ChiSquared{K: float64(dof)}.Survival(chi2)
	return TestResult{Statistic: Of(chi2), PValue: Of(clampProbability(p))}
}

// ChiSquare returns the χ² statistic of ChiSquareTest.
func ChiSquare(xs []float64) Statistic {
	return ChiSquareTest(xs).Statistic
}

// kolmogorovSurvival returns the asymptotic probability that the Kolmogorov
// distribution exceeds lambda, Q(λ) = 2 Σ (-1)^(j-1) exp(-2j²λ²).
func kolmogorovSurvival(lambda float64) float64 {
	const (
		maxTerms = 100
		eps1     = 0.001
		eps2     = 1e-8
	)
	a2 := -2 * lambda * lambda
	fac := 2.0
	sum, previous := 0.0, 0.0
	for j := 1; j <= maxTerms; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= eps1*previous || math.Abs(term) <= eps2*sum {
			return clampProbability(sum)
		}
		fac = -fac
		previous = math.Abs(term)
	}
	// The series only fails to converge for λ close to 0.
	return 1
}

// KolmogorovSmirnovTest runs the one-sample Kolmogorov-Smirnov test of the
// sample against the normal distribution with the sample's mean and standard
// deviation. The statistic D is the largest distance between the empirical
// CDF and the fitted normal CDF.
//
// The p-value uses the asymptotic Kolmogorov distribution with Stephens'
// small-sample correction λ = (√n + 0.12 + 0.11/√n)·D. Since the parameters
// are estimated from the sample, it is conservative. The test is Undefined if
// n < 2 or the standard deviation is not strictly positive.
func KolmogorovSmirnovTest(xs []float64) TestResult {
	n := len(xs)
	if n < 2 {
		return undefinedTest()
	}
	dist, ok := fitNormal(xs)
	if !ok {
		return undefinedTest()
	}

	s := sortedCopy(xs)
	nf := float64(n)
	var d float64
	for i, x := range s {
		cdf := dist.CDF(x)
		d = math.Max(d, math.Max(float64(i+1)/nf-cdf, cdf-float64(i)/nf))
	}
	sqrtN := math.Sqrt(nf)
	p := kolmogorovSurvival((sqrtN + 0.12 + 0.11/sqrtN) * d)
	return TestResult{Statistic: Of(d), PValue: Of(p)}
}

// KolmogorovSmirnov returns the D statistic of KolmogorovSmirnovTest.
func KolmogorovSmirnov(xs []float64) Statistic {
	return KolmogorovSmirnovTest(xs).Statistic
}
