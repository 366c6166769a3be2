// Package main provides the CLI entrypoint for minitype.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/minitype/internal/config"
	"github.com/verte-zerg/minitype/internal/generator"
	"github.com/verte-zerg/minitype/internal/model"
	"github.com/verte-zerg/minitype/internal/session"
	"github.com/verte-zerg/minitype/internal/stats"
	"github.com/verte-zerg/minitype/internal/tui"
	"github.com/verte-zerg/minitype/internal/web"
	"github.com/verte-zerg/minitype/internal/wordlist"
)

const defaultAddr = "localhost:8080"

var (
	practiceWordList string
	serveAddr        string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "minitype",
		Short:         "Ten-word typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}
	rootCmd.PersistentFlags().StringVar(&practiceWordList, "wordlist", "", "word list file, one word per line (default: built-in words)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := practiceConfig(cmd, fileCfg)
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("minitype needs an interactive terminal (try: minitype serve)")
	}

	ctrl, err := session.New(vocab, cfg.Words, generator.New(), session.SystemClock{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	m := tui.NewModel(ctrl)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if res, ok := m.Result(); ok {
		if err := stats.RenderResult(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the typing test to a browser",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := practiceConfig(cmd, fileCfg)
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Serve.Addr)
	serveCfg := model.ServeConfig{Addr: strings.TrimSpace(serveAddr)}
	if serveCfg.Addr == "" {
		return fmt.Errorf("--addr must not be empty")
	}
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := web.NewServer(vocab, cfg.Words)
	logErrf("Open http://%s/ in a browser\n", displayAddr(serveCfg.Addr))
	return srv.ListenAndServe(ctx, serveCfg.Addr)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Print the active vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	vocab, err := loadVocabulary(practiceConfig(cmd, fileCfg))
	if err != nil {
		return err
	}
	for _, word := range vocab {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func practiceConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	return model.Config{
		Words:        model.DefaultWords,
		WordListPath: config.ExpandHome(strings.TrimSpace(practiceWordList)),
	}
}

func loadVocabulary(cfg model.Config) ([]string, error) {
	vocab := wordlist.Default()
	if cfg.WordListPath != "" {
		loaded, err := wordlist.LoadWords(cfg.WordListPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
		}
		vocab = loaded
	}
	if err := validateVocabulary(cfg, vocab); err != nil {
		return nil, err
	}
	return vocab, nil
}

func validateVocabulary(cfg model.Config, vocab []string) error {
	if len(vocab) < cfg.Words {
		return fmt.Errorf("%w: word list has %d distinct words, need at least %d", generator.ErrNotEnoughWords, len(vocab), cfg.Words)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# minitype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# wordlist = "~/words.txt"   # One word per line (default: built-in words)

[serve]
# addr = %q        # Listen address for "minitype serve"
`,
		defaultAddr,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
