package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arenvale/logpool/pkg/app"
)

func main() {
	cliArgs := app.ParseCLIArgs()

	// 1. Resolve the configuration: defaults, then file, then flags.
	cfg, err := app.ResolveConfig(cliArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	pool, err := cfg.NewPool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// 2. Create the App structure around the pool. From here on the pool's
	// console feeds the UI, and lifecycle messages go through the pool too.
	a := app.NewApp(pool)
	logger := a.GetLogger()

	logger.Infof("Main: Viewer starting with threshold %s and capacity %d.",
		pool.GetVerbosity(), pool.GetMaxSize())
	if cliArgs.ConfigPath != "" {
		logger.Infof("Main: Loaded config from %s.", cliArgs.ConfigPath)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				logger.Infof("Main: Build Time: %s", setting.Value)
			}
			if setting.Key == "vcs.revision" {
				logger.Infof("Main: Build Revision: %s", setting.Value)
			}
		}
	}

	// 3. Setup OS signal trapping
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		a.QueueUpdateDraw(func() {
			a.Dialogs().ShowQuitDialog()
		})
	}()

	// 4. Run the application
	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 5. Optionally dump the retained window before the process forgets it.
	if cliArgs.Dump {
		pool.SetConsole(os.Stdout)
		if err := pool.PrintLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
