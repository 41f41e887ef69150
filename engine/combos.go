package engine

// MaxSearchItems bounds the subset searches below. The enumeration is
// exponential in the item count, and prompts never offer more cards than a
// hand plus a field.
const MaxSearchItems = 24

// Combinations returns every k-element index subset of [0, n) in
// lexicographic order, generated by stepping a k-ones bit pattern through its
// previous permutations.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	pattern := make([]bool, n)
	for i := 0; i < k; i++ {
		pattern[i] = true
	}

	var combs [][]int
	for {
		cs := make([]int, 0, k)
		for i, on := range pattern {
			if on {
				cs = append(cs, i)
			}
		}
		combs = append(combs, cs)
		if !prevPermutation(pattern) {
			return combs
		}
	}
}

// prevPermutation rearranges p into the previous lexicographic permutation
// (true > false) and reports whether one existed.
func prevPermutation(p []bool) bool {
	n := len(p)
	if n < 2 {
		return false
	}
	// Rightmost i with p[i] > p[i+1].
	i := n - 2
	for i >= 0 && !(p[i] && !p[i+1]) {
		i--
	}
	if i < 0 {
		return false
	}
	// Rightmost j > i with p[j] < p[i].
	j := n - 1
	for p[j] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

// MaxCombinations bounds how many subsets a fixed-size pick may enumerate.
const MaxCombinations = 1 << 16

// binomial returns C(n, k), saturating at limit+1.
func binomial(n, k, limit int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
		if c > limit {
			return limit + 1
		}
	}
	return c
}

// BoundedCombinations is Combinations that refuses with ErrSearchTooLarge
// when C(n, k) exceeds MaxCombinations.
func BoundedCombinations(n, k int) ([][]int, error) {
	if binomial(n, k, MaxCombinations) > MaxCombinations {
		return nil, ErrSearchTooLarge
	}
	return Combinations(n, k), nil
}

// sumTo reports whether the weights of ind[i:] add up to exactly r.
func sumTo(w []int, ind []int, i, r int) bool {
	if r <= 0 {
		return false
	}
	if i == len(ind)-1 {
		return w[ind[i]] == r
	}
	return sumTo(w, ind, i+1, r-w[ind[i]])
}

// sumTo2 is sumTo for items carrying one or two alternative weights.
func sumTo2(w [][]int, ind []int, i, r int) bool {
	if r <= 0 {
		return false
	}
	alts := w[ind[i]]
	if i == len(ind)-1 {
		for _, v := range alts {
			if v == r {
				return true
			}
		}
		return false
	}
	for _, v := range alts {
		if sumTo2(w, ind, i+1, r-v) {
			return true
		}
	}
	return false
}

// searchSubsets returns every non-empty index subset of [0, n) accepted by ok,
// smallest subsets first and lexicographic within a size.
func searchSubsets(n int, ok func(comb []int) bool) ([][]int, error) {
	if n > MaxSearchItems {
		return nil, ErrSearchTooLarge
	}
	var results [][]int
	for k := 1; k <= n; k++ {
		for _, comb := range Combinations(n, k) {
			if ok(comb) {
				results = append(results, comb)
			}
		}
	}
	return results, nil
}

// CombinationsWithWeight returns every non-empty index subset of weights that
// sums to exactly r, smallest subsets first and lexicographic within a size.
//
// A single-item subset is also accepted when r == 1; select-one prompts are
// always satisfiable in the engine.
func CombinationsWithWeight(weights []int, r int) ([][]int, error) {
	return searchSubsets(len(weights), func(comb []int) bool {
		if len(comb) == 1 && r == 1 {
			return true
		}
		return sumTo(weights, comb, 0, r)
	})
}

// CombinationsWithWeight2 is CombinationsWithWeight for items with one or two
// alternative weights, e.g. a card whose level can be counted two ways.
// Each inner slice must hold one or two values. Sums must match exactly.
func CombinationsWithWeight2(weights [][]int, r int) ([][]int, error) {
	return searchSubsets(len(weights), func(comb []int) bool {
		return sumTo2(weights, comb, 0, r)
	})
}
