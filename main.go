package main

import (
	"flag"
	"fmt"
	"os"

	"unknwon.dev/clog/v2"

	"github.com/kyudori/appbridge/internal/app"
)

func main() {
	args := app.ArgsList{}
	flag.StringVar(&args.Mode,
		"mode", "serve",
		"one of: serve, download, open, version, write, read")
	flag.StringVar(&args.Listen,
		"listen", "127.0.0.1:4870",
		"bridge listen address (serve mode)")
	flag.StringVar(&args.URL,
		"url", "",
		"resource url to download (download mode)")
	flag.StringVar(&args.Method,
		"method", "GET",
		"http method; only POST sends a file_ids body, anything else is sent as GET")
	flag.StringVar(&args.IDs,
		"ids", "",
		"comma separated file ids for the POST body, like: 3,1,2")
	flag.StringVar(&args.Output,
		"output", "",
		"destination file path for the downloaded content (download mode)")
	flag.StringVar(&args.Path,
		"path", "",
		"target path (open/write/read modes)")
	flag.StringVar(&args.Content,
		"content", "",
		"text content to write (write mode)")
	flag.BoolVar(&args.Verbose,
		"verbose", false,
		"verbose output trace log")
	flag.Parse()

	if args.Verbose {
		_ = clog.NewConsole(0, clog.ConsoleConfig{
			Level: clog.LevelTrace,
		})
	} else {
		_ = clog.NewConsole(0, clog.ConsoleConfig{
			Level: clog.LevelInfo,
		})
	}
	defer clog.Stop()

	opt, err := app.ParseOption(args)
	if err != nil {
		fmt.Println("--------------------------------------------")
		fmt.Printf("Error: %s\n", err)
		fmt.Println("--------------------------------------------")
		fmt.Println("Usage:")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err = app.NewApp(opt).Execute(); err != nil {
		// The host contract is a plain message string.
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
