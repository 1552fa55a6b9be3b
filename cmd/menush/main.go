package main

import (
	"fmt"
	"io"
	"os"

	"github.com/menush/menush/internal/audit"
	"github.com/menush/menush/internal/executor"
	"github.com/menush/menush/internal/identity"
	"github.com/menush/menush/internal/manifest"
	"github.com/menush/menush/internal/session"
	"github.com/menush/menush/internal/storage"
	"github.com/menush/menush/internal/terminal"
	"github.com/menush/menush/internal/tui"
	"github.com/spf13/cobra"
)

var useTUI bool

// exitCode is set by the session's termination outcome and consumed at
// the single shutdown point in main.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "menush",
	Short: "Restricted menu shell",
	Long: "menush presents an administrator-defined menu of commands to the\n" +
		"authenticated user and refuses to execute anything outside that list.\n" +
		"Menus live in " + storage.DefaultMenuDir + ", one file per user, with a\n" +
		"__default__ fallback. Every load, invocation and error is audited.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := storage.InitConfig()
		return err
	},
	RunE: runShell,
}

func init() {
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "use the full-screen menu instead of the numbered prompt")
	rootCmd.AddCommand(getManualCommand())
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := storage.GetConfig()

	user, err := identity.Current()
	if err != nil {
		return err
	}

	var sink io.Writer
	if !cfg.Log.Syslog {
		sink = os.Stderr
	}
	log := audit.New(audit.Options{Identity: user, Output: sink})
	defer log.Close()

	path, err := manifest.Resolve(cfg.Menu.Dir, user)
	if err != nil {
		log.Fatal(err.Error())
		exitCode = 1
		return err
	}
	m, err := manifest.Load(path)
	if err != nil {
		log.Fatal(err.Error())
		exitCode = 1
		return err
	}
	log.MenuLoaded(path)

	plain := terminal.New(nil, nil)
	var prompter session.Prompter = plain
	if useTUI || cfg.UI.TUI {
		prompter = tui.NewPrompter(plain)
	}

	sess := session.New(m, prompter, executor.New(), log, nil)
	term := sess.Run()
	exitCode = term.Code
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
