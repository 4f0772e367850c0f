// SPDX-License-Identifier: MIT
// Package regression: functional options for Train.

package regression

// DefaultIntercept controls whether Train prepends the constant-1 column.
const DefaultIntercept = true

// Option customizes Train.
type Option func(*options)

type options struct {
	intercept bool // DefaultIntercept
}

// WithIntercept fits an intercept term (the default).
func WithIntercept() Option {
	return func(o *options) { o.intercept = true }
}

// WithoutIntercept forces the fitted hyperplane through the origin.
func WithoutIntercept() Option {
	return func(o *options) { o.intercept = false }
}

func gatherOptions(user ...Option) options {
	o := options{intercept: DefaultIntercept}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
