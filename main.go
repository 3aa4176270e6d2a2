package main

import (
	"errors"
	"fmt"
	"os"

	"agent-hooks/cmd/cli/cmd"
	"agent-hooks/internal/application/service"
)

// Exit codes: 0 allows the checked action, blockExitCode blocks it, and any
// other non-zero code means the tool itself malfunctioned.
const blockExitCode = 2

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, service.ErrCommandBlocked) || errors.Is(err, service.ErrFileProtected) {
		os.Exit(blockExitCode)
	}
	fmt.Fprintf(os.Stderr, "agent-hooks: %v\n", err)
	os.Exit(1)
}
