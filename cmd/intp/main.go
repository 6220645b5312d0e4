package main

import (
	"os"

	"github.com/msto63/intp/cmd/intp/cmd"
	intperror "github.com/msto63/intp/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(intperror.GetCode(err).ExitCode())
	}
}
