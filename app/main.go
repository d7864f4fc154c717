package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload" // FOLIO_* settings from .env
)

type options struct {
	Server ServerCmd `command:"server" description:"serve the portfolio screen over http"`
	TUI    TUICmd    `command:"tui" description:"show the portfolio screen in this terminal"`
	SSH    SSHCmd    `command:"ssh" description:"serve the terminal portfolio screen over ssh"`
	Render RenderCmd `command:"render" description:"print the settled portfolio screen once"`

	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Version || cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				p.WriteHelp(os.Stderr)
				os.Exit(2)
			}
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("folio %s\n", revision)
		os.Exit(0)
	}

	if p.Active == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
}

func setupLogs(debug bool, out io.Writer) {
	logOpts := []log.Option{log.Msec, log.Out(out), log.Err(out)}
	if debug {
		logOpts = append(logOpts, log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	log.Setup(logOpts...)
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes the reverse proxy prefix, "" and "/" mean no prefix.
func validateBaseURL(base string) (string, error) {
	if base == "" || base == "/" {
		return "", nil
	}
	if !strings.HasPrefix(base, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", base)
	}
	if strings.Contains(base, "//") {
		return "", fmt.Errorf("base URL must not contain empty segments, got %q", base)
	}
	return strings.TrimRight(base, "/"), nil
}
