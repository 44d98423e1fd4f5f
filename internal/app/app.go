// Package app parses command-line options and dispatches the selected
// mode: serve the shell bridge, or run a single operation one-shot.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/kyudori/appbridge/api/command"
	"github.com/kyudori/appbridge/internal/bridge"
	"github.com/kyudori/appbridge/internal/misc"
)

var (
	log            = misc.NewLogger("App", 2)
	supportedModes = []string{"serve", "download", "open", "version", "write", "read"}
)

type ArgsList struct {
	Verbose bool
	Mode    string
	Listen  string
	URL     string
	Method  string
	IDs     string
	Output  string
	Path    string
	Content string
}

// Option holds validated inputs for a single run.
type Option struct {
	Mode    string
	Listen  string
	URL     string
	Method  string
	FileIDs []int
	Output  string
	Path    string
	Content string
}

// ParseOption validates the command line for the selected mode.
func ParseOption(args ArgsList) (*Option, error) {
	mode := strings.ToLower(args.Mode)
	if !isSupportedMode(mode) {
		return nil, fmt.Errorf("invalid mode [%s], expecting one of %s", args.Mode, strings.Join(supportedModes, "/"))
	}

	opt := Option{
		Mode:    mode,
		Listen:  args.Listen,
		URL:     args.URL,
		Method:  args.Method,
		Output:  args.Output,
		Path:    args.Path,
		Content: args.Content,
	}

	switch mode {
	case "serve":
		if opt.Listen == "" {
			return nil, fmt.Errorf("serve mode requires a listen address")
		}
	case "download":
		if opt.URL == "" {
			return nil, fmt.Errorf("download mode requires an url parameter")
		}
		if opt.Output == "" {
			return nil, fmt.Errorf("download mode requires an output parameter")
		}
		ids, err := parseIDs(args.IDs)
		if err != nil {
			return nil, errors.Wrap(err, "invalid ids parameter")
		}
		opt.FileIDs = ids
	case "open", "read":
		if opt.Path == "" {
			return nil, fmt.Errorf("%s mode requires a path parameter", mode)
		}
	case "write":
		if opt.Path == "" {
			return nil, fmt.Errorf("write mode requires a path parameter")
		}
	}

	return &opt, nil
}

func isSupportedMode(mode string) bool {
	for _, m := range supportedModes {
		if mode == m {
			return true
		}
	}
	return false
}

// parseIDs parses a comma-separated integer list, preserving order.
func parseIDs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid id value [%s]", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// App executes one run of the selected mode.
type App struct {
	option *Option
}

func NewApp(opt *Option) *App {
	return &App{option: opt}
}

func (a App) Execute() error {
	opt := a.option
	switch opt.Mode {
	case "serve":
		return a.serve()
	case "download":
		saved, err := command.DownloadAndSaveFile(context.Background(), opt.URL, opt.Output, opt.FileIDs, opt.Method)
		if err != nil {
			return err
		}
		fmt.Println(saved)
	case "open":
		return command.OpenFolder(opt.Path)
	case "version":
		fmt.Println(command.GetVersion())
	case "write":
		return command.SaveFileContent(opt.Path, opt.Content)
	case "read":
		content, err := command.ReadFileContent(opt.Path)
		if err != nil {
			return err
		}
		fmt.Print(content)
	}

	return nil
}

// serve runs the bridge until SIGINT/SIGTERM, then shuts down gracefully.
func (a App) serve() error {
	server := bridge.NewServer(a.option.Listen)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("Received %s, shutting down.", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Stop(ctx)
	}
}
