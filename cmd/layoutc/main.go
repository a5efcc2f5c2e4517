package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	log, err := logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defer log.Sync()

	cli := &CLI{stdin: os.Stdin, stdout: os.Stdout, log: log}

	switch command {
	case "render":
		err = cli.Render(args)
	case "put":
		err = cli.Put(args)
	case "get":
		err = cli.Get(args)
	case "list":
		err = cli.List(args)
	case "rm":
		err = cli.Remove(args)
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	if os.Getenv("LAYOUTC_DEBUG") != "" {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return config.Build()
}

func printUsage() {
	fmt.Println("Layout compiler")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  layoutc render [-config file] [-format f] [-o out] [file]   Render stored layout")
	fmt.Println("  layoutc put -db path -name name [file]                      Save layout to the database")
	fmt.Println("  layoutc get -db path -name name [-config file] [-format f]  Render layout from the database")
	fmt.Println("  layoutc list -db path                                       List saved layouts")
	fmt.Println("  layoutc rm -db path -name name                              Delete saved layout")
	fmt.Println()
	fmt.Println("Layout is read from the standard input when file is omitted or \"-\".")
	fmt.Println()
	fmt.Println("Formats:")
	fmt.Println("  jsx (default)  - component markup")
	fmt.Println("  html           - HTML markup")
	fmt.Println("  tree           - outline of the layout tree")
	fmt.Println("  json           - layout tree as JSON")
	fmt.Println("  text           - text content only")
}
