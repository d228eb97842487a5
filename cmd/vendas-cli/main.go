package main

import (
	"fmt"
	"os"

	"github.com/voxtelecom/vendas-cli/internal/vendas"
)

func main() {
	// No arguments or "tui" command -> launch TUI
	if len(os.Args) < 2 || os.Args[1] == "tui" {
		client, err := buildClient()
		if err != nil {
			fmt.Printf("%sError: %s%s\n", vendas.Red, err, vendas.Reset)
			os.Exit(1)
		}
		if err := vendas.RunTUI(client); err != nil {
			fmt.Printf("%sError: %s%s\n", vendas.Red, err, vendas.Reset)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cmd := os.Args[1]

	// Help doesn't need config
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		os.Exit(0)
	}

	// Version
	if cmd == "version" || cmd == "-v" || cmd == "--version" {
		fmt.Printf("Vendas CLI v%s\n", vendas.Version)
		os.Exit(0)
	}

	client, err := buildClient()
	if err != nil {
		fmt.Printf("%sError: %s%s\n", vendas.Red, err, vendas.Reset)
		os.Exit(1)
	}

	var cmdErr error
	switch cmd {
	case "ping":
		cmdErr = client.CmdPing()
	case "config":
		cmdErr = client.CmdConfig()
	default:
		fmt.Printf("%sUnknown command: %s%s\n", vendas.Red, cmd, vendas.Reset)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Printf("%sError: %s%s\n", vendas.Red, cmdErr, vendas.Reset)
		os.Exit(1)
	}
}

func buildClient() (*vendas.Client, error) {
	config, err := vendas.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := vendas.NewLogger(config)
	if err != nil {
		return nil, err
	}
	return vendas.NewClient(config, logger), nil
}

func printUsage() {
	fmt.Printf(`%sVendas CLI%s - terminal dashboard for the sales tracker

Usage: vendas-cli [command]

%sCommands:%s

  %stui%s                               Launch the dashboard (default)
  %sping%s                              Test connection and authentication
  %sconfig%s                            Show current configuration
  %sversion%s                           Show version information

Configuration is read from vendas.yaml in the working directory or the
user config dir, with VENDAS_* environment overrides (VENDAS_API_URL,
VENDAS_SESSION_ROLE, ...).
`,
		vendas.Blue, vendas.Reset,
		vendas.Yellow, vendas.Reset,
		vendas.Green, vendas.Reset,
		vendas.Green, vendas.Reset,
		vendas.Green, vendas.Reset,
		vendas.Green, vendas.Reset,
	)
}
