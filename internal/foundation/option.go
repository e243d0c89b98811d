package foundation

// Option represents a value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option with a value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OkOr converts the Option into a Result, using err when the Option is empty.
func OkOr[T any, E error](o Option[T], err E) Result[T, E] {
	if o.present {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err)
}
