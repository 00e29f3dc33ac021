package configs

import (
	"github.com/pkg/errors"
)

// First decodes the value at path from the first file defining it.
// It returns def when no file does.
func First[T any](loader Loader, path string, def T) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def, nil
		}
		return def, err
	}
	return value, nil
}
