package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/sixnimmt/internal/logging"
	nimmtmcp "github.com/peterkuimelis/sixnimmt/internal/mcp"
)

func main() {
	debug := flag.Bool("debug", false, "debug logging (stderr)")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	nimmtmcp.SetLogger(logger)

	s := server.NewMCPServer("sixnimmt", "1.0.0")
	nimmtmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
