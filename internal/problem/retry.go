package problem

// DefaultMaxAttempts bounds every generate-validate-retry loop unless a
// generator's settings override it.
const DefaultMaxAttempts = 200

// Retry calls attempt until it reports ok or maxAttempts calls have been made.
// On exhaustion it returns onExhausted(err) where err is a KindExhausted *Error.
// attempt receives the zero-based attempt number.
func Retry[T any](maxAttempts int, attempt func(n int) (T, bool), onExhausted func(err error) T) T {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for n := range maxAttempts {
		if v, ok := attempt(n); ok {
			return v
		}
	}
	return onExhausted(Exhausted(maxAttempts))
}
