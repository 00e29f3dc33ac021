package configs

import "github.com/pkg/errors"

var ErrValueNotFound = errors.New("value not found")
