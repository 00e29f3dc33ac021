package main

import (
	"github.com/reusee/dscope"
	"github.com/you-not-fish/qasmc/internal/configs"
	"github.com/you-not-fish/qasmc/internal/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
