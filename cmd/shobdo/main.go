/*
Package main implements the shobdo server and commandline interface.

shobdo suggests Bengali word completions from two independent prefix
automata: one walks a Roman-to-Bengali transliteration pattern table
(Avro-style typing), the other walks native Bengali script directly
against the dictionary. It can run as a MessagePack IPC server for
editor integrations or as a standalone CLI for one-shot queries and
interactive testing.

# One-shot mode

Running shobdo with a single positional argument prints its
suggestions, sorted and comma-separated on one line, and exits:

	shobdo ami

# CLI mode

-c starts an interactive shell that accepts repeated queries and
routes each line to the Roman or Bengali suggester by inspecting its
first scalar.

# Server mode

-server starts the msgpack IPC loop described in pkg/server, reading
requests from stdin and writing responses to stdout.

# Config

Runtime configuration is managed via a config.toml file supporting
server, cache and CLI settings. A default configuration is created
automatically if one does not exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/bengalinput/shobdo/internal/cli"
	"github.com/bengalinput/shobdo/internal/logger"
	"github.com/bengalinput/shobdo/internal/utils"
	"github.com/bengalinput/shobdo/pkg/config"
	"github.com/bengalinput/shobdo/pkg/server"
	"github.com/bengalinput/shobdo/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	version = "0.1.0-beta"
	appName = "shobdo"
	gh      = "https://github.com/bengalinput/shobdo"
)

// sigHandler exits normally on interrupt or termination.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	cliMode := flag.Bool("c", false, "Run interactive shell -- useful for testing and debugging")
	serverMode := flag.Bool("server", false, "Run msgpack IPC server on stdin/stdout")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable Roman input filtering (DBG only)")
	avroCacheSize := flag.Int("avro-cache", defaultConfig.Cache.AvroCacheSize, "Avro suggestion cache size (0 disables)")
	banglaCacheSize := flag.Int("bangla-cache", defaultConfig.Cache.BanglaCacheSize, "Bangla suggestion cache size (0 disables)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := log.WarnLevel
	showTimestamp := false
	if *debugMode {
		level = log.DebugLevel
		showTimestamp = true
	}
	log.SetDefault(logger.NewWithConfig(appName, level, false, showTimestamp, log.TextFormatter))

	configPath := *configFile
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Debugf("using config file: %s", configPath)

	avroSize, banglaSize := appConfig.Cache.AvroCacheSize, appConfig.Cache.BanglaCacheSize
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "avro-cache":
			avroSize = *avroCacheSize
		case "bangla-cache":
			banglaSize = *banglaCacheSize
		}
	})
	avro := suggest.NewAvroSuggester(suggest.WithCache(avroSize))
	bangla := suggest.NewBanglaSuggester(suggest.WithCache(banglaSize))

	switch {
	case *serverMode:
		log.Debug("spawning IPC server")
		srv := server.NewServer(avro, bangla, appConfig, configPath)
		showStartupInfo()
		if err := srv.Start(); err != nil {
			log.Fatalf("server error: %v", err)
		}

	case *cliMode:
		log.SetReportTimestamp(false)
		shell := cli.NewShell(avro, bangla, *noFilter || appConfig.CLI.DefaultNoFilter)
		if err := shell.Run(); err != nil {
			os.Exit(0)
		}

	default:
		args := flag.Args()
		if len(args) != 1 {
			fmt.Fprintf(os.Stderr, "usage: %s <word>\n", appName)
			os.Exit(1)
		}
		runOneShot(avro, bangla, args[0], *noFilter || appConfig.CLI.DefaultNoFilter)
	}
}

func runOneShot(avro *suggest.AvroSuggester, bangla *suggest.BanglaSuggester, word string, noFilter bool) {
	var words []string
	if isBengaliInput(word) {
		words = bangla.Suggest(word)
	} else {
		if !noFilter && !utils.IsValidInput(word) {
			fmt.Fprintf(os.Stderr, "input %q filtered out\n", word)
			os.Exit(1)
		}
		words = avro.Suggest(word)
	}

	if len(words) == 0 {
		os.Exit(1)
	}
	sort.Strings(words)
	fmt.Println(strings.Join(words, ", "))
}

func isBengaliInput(s string) bool {
	for _, r := range s {
		return r >= 0x0980 && r <= 0x09FF
	}
	return false
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shobdo-config.toml"
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[shobdo] Bengali word suggestions from Roman or Bengali prefixes")
	logger.Print("", "version", version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
	logger.Print("Find out more at", "gh", gh)
}

func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  shobdo   ")
	println("===========")
	log.Infof("version: %s", version)
	log.Infof("process id: [ %d ]", pid)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
