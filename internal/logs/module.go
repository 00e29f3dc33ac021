// Package logs provides the structured logger shared by the compiler phases.
package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}
