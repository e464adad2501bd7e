package peel

import "slices"

// bucketFor returns the index of the smallest bucket that holds n bytes, or
// -1 when n exceeds the largest bucket.
func (p *Pool) bucketFor(n int) int {
	i, _ := slices.BinarySearch(p.opts.Buckets, n)
	if i == len(p.opts.Buckets) {
		return -1
	}
	return i
}

// largestBucket returns the size of the largest bucket.
func (p *Pool) largestBucket() int {
	return p.opts.Buckets[len(p.opts.Buckets)-1]
}

// RoundUp returns the bucket size a capture of n bytes occupies and whether
// one exists.
func (p *Pool) RoundUp(n int) (int, bool) {
	i := p.bucketFor(n)
	if i < 0 {
		return 0, false
	}
	return p.opts.Buckets[i], true
}
