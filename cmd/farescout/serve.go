package farescout

import (
	"flag"
	"fmt"

	"github.com/farescout/farescout/pkg/launcher"
)

func handleServeCommand(args []string) error {
	serveCmd := flag.NewFlagSet("serve", flag.ExitOnError)
	port := serveCmd.Int("port", 8501, "Port to run the web server on")

	if err := serveCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return launcher.RunWeb(*port)
}
