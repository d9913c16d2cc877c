package farescout

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the CLI
func Execute() error {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		if len(os.Args) < 2 {
			return fmt.Errorf("no command provided")
		}
		return nil
	}

	command := os.Args[1]
	switch command {
	case "serve":
		return handleServeCommand(os.Args[2:])
	case "run":
		return handleRunCommand(os.Args[2:])
	case "setup":
		return handleSetupCommand()
	case "config":
		return handleConfigCommand(os.Args[2:])
	case "version", "--version", "-v":
		printVersion()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: farescout [-h] {serve,run,config,setup,version} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {serve,run,config,setup,version}")
	fmt.Println("                        FareScout CLI commands")
	fmt.Println("    serve               Start the web UI server")
	fmt.Println("    run                 Run one fare search from the terminal")
	fmt.Println("    config              Manage configuration")
	fmt.Println("    setup               Run interactive setup")
	fmt.Println("    version             Print version information")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}
