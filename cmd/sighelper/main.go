package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	sighelper "github.com/tjmnmk/inv-sig-helper"
	"github.com/tjmnmk/inv-sig-helper/internal/logger"
	"github.com/tjmnmk/inv-sig-helper/youtube/player"
)

func main() {
	var (
		flagTimeout time.Duration
		flagJSON    bool
		flagDebug   bool
	)

	flag.DurationVar(&flagTimeout, "http-timeout", 30*time.Second, "HTTP timeout (e.g., 30s, 1m)")
	flag.BoolVar(&flagJSON, "json-logs", false, "Emit logs as JSON")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nRuns one player update pass and prints the resulting cache state.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.GetGlobalLogger()
	if flagJSON {
		log.SetFormat(logger.FormatJSON)
	}
	if flagDebug {
		log.SetLevel(logger.DEBUG)
	}

	helper := sighelper.New(sighelper.WithHTTPClient(&http.Client{Timeout: flagTimeout}))

	err := helper.Update(context.Background())
	switch {
	case err == nil:
	case player.IsAlreadyUpdated(err):
		fmt.Println("player already up to date")
	default:
		fmt.Fprintf(os.Stderr, "update failed: %v\n", err)
		os.Exit(1)
	}

	info := helper.PlayerInfo()
	fmt.Printf("player_id: %08x\n", info.PlayerID)
	fmt.Printf("signature_timestamp: %d\n", info.SignatureTimestamp)
	fmt.Printf("sig_function_name: %s\n", info.SigFunctionName)
	fmt.Printf("nsig_code_bytes: %d\n", len(info.NsigFunctionCode))
	fmt.Printf("sig_code_bytes: %d\n", len(info.SigFunctionCode))
}
