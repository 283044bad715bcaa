package sketch

// Binomial returns the binomial coefficient C(n, k), the number of ways to
// choose k items out of n.
//
// It returns 0 when k < 0 or k > n, and 1 when k is 0 or n. Otherwise the
// coefficient is computed with the multiplicative formula over the smaller of
// k and n−k. Every intermediate value is itself a binomial coefficient, so
// the result is exact as long as it fits in a float64 mantissa (n ≤ 56 for
// every k) and finite for n up to about a thousand.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	res := 1.0
	for j := 1; j <= k; j++ {
		res = res * float64(n-k+j) / float64(j)
	}
	return res
}
