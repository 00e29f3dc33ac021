package configs

import (
	"iter"

	"github.com/pkg/errors"
)

// All decodes the value at path from every file defining it, in priority order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if err := value.Decode(&v); err != nil {
				yield(v, errors.Wrapf(err, "decode %s", path))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
