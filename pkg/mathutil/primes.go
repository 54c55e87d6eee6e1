package mathutil

import "fmt"

// Primes returns all primes up to and including limit, in ascending order,
// using a sieve of Eratosthenes. A limit below 2 yields an empty slice; a
// negative limit is rejected with ErrNegativeInput.
func Primes(limit int) ([]int, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit=%d", ErrNegativeInput, limit)
	}
	if limit < 2 {
		return []int{}, nil
	}

	composite := make([]bool, limit+1)
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for n := p * p; n <= limit; n += p {
			composite[n] = true
		}
	}

	primes := make([]int, 0, limit/2)
	for n := 2; n <= limit; n++ {
		if !composite[n] {
			primes = append(primes, n)
		}
	}
	return primes, nil
}

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// Every prime above 3 has the form 6k±1.
	for f := 5; f*f <= n; f += 6 {
		if n%f == 0 || n%(f+2) == 0 {
			return false
		}
	}
	return true
}
