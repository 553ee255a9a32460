package main

import (
	"fmt"
	"os"

	"github.com/teranos/jcodemodel/cmd/jcm/commands"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/logger"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		logger.Cleanup()
		os.Exit(1)
	}
	logger.Cleanup()
}
