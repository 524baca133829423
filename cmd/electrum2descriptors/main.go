// Package main provides the electrum2descriptors CLI tool for converting
// Electrum wallet files to output descriptors and back.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AminaBank/electrum2descriptors"
	"github.com/AminaBank/electrum2descriptors/descriptor"
	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	checksum bool
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "electrum2descriptors [wallet-file|-]",
		Short: "Print the output descriptors of an Electrum wallet file",
		Long: `Print the output descriptors of an Electrum wallet file.

Two descriptors are printed, one per line: the receive branch (/0/*)
followed by the change branch (/1/*). Standard wallets give pkh, wpkh,
sh(wpkh), wsh or sh(wsh) descriptors; m-of-n wallets give sortedmulti
descriptors wrapped in sh, wsh or sh(wsh).

The wallet file is read from standard input when piped or when the path
is "-". Encrypted wallet files are not supported: disable the password
in Electrum first.

SECURITY TIP: descriptors built from a wallet holding private keys
contain those keys. Treat the output like the wallet file itself.`,
		Example: `  electrum2descriptors ~/.electrum/wallets/default_wallet
  electrum2descriptors --checksum ~/.electrum/wallets/default_wallet
  cat wallet.json | electrum2descriptors
  E2D_LOG_LEVEL=debug electrum2descriptors wallet.json`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no arguments provided and stdin is not a pipe, show help
			if len(args) == 0 {
				if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) == 0 {
					return cmd.Help()
				}
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}

			return printDescriptors(cmd.OutOrStdout(), path)
		},
	}

	fromDescriptorCmd = &cobra.Command{
		Use:   "from-descriptor <descriptor> [output-file]",
		Short: "Build an Electrum wallet file from a descriptor",
		Long: `Build an Electrum wallet file from a receive branch descriptor.

The descriptor must use the receive branch (/0/*). A trailing checksum
is verified when present. Key origins ([fingerprint/path]) are stored
as the keystore's root_fingerprint and derivation.

The wallet file is written to output-file, created readable by its
owner only, or to standard output when no file is given.`,
		Example: `  electrum2descriptors from-descriptor "wpkh(xpub.../0/*)" wallet.json
  electrum2descriptors from-descriptor "wsh(sortedmulti(2,xpub1.../0/*,xpub2.../0/*,xpub3.../0/*))"`,
		Args:         cobra.RangeArgs(1, 2), //nolint:mnd
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := electrum2descriptors.FromDescriptor(args[0])
			if err != nil {
				return fmt.Errorf("could not convert descriptor: %w", err)
			}
			log.WithFields(log.Fields{
				"wallet_type": w.WalletType.String(),
				"keystores":   len(w.Keystores),
			}).Debug("descriptor recognized")

			if len(args) < 2 { //nolint:mnd
				return w.Write(cmd.OutOrStdout())
			}
			if err := w.ToFile(args[1]); err != nil {
				return err
			}
			log.Debugf("wallet file written to %s", args[1])
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}

			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 AminaBank\n"+
				"See LICENSE for licensing information.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for electrum2descriptors.

To load completions:

Bash:

  $ source <(electrum2descriptors completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ electrum2descriptors completion bash > /etc/bash_completion.d/electrum2descriptors
  # macOS:
  $ electrum2descriptors completion bash > $(brew --prefix)/etc/bash_completion.d/electrum2descriptors

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ electrum2descriptors completion zsh > "${fpath[1]}/_electrum2descriptors"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ electrum2descriptors completion fish | source

  # To load completions for each session, execute once:
  $ electrum2descriptors completion fish > ~/.config/fish/completions/electrum2descriptors.fish

PowerShell:

  PS> electrum2descriptors completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> electrum2descriptors completion powershell > electrum2descriptors.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&checksum, "checksum", false, "Append a BIP380 checksum to each descriptor (env E2D_CHECKSUM)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.WarnLevel.String(), "Log level: error, warn, info, debug (env E2D_LOG_LEVEL)")

	rootCmd.AddCommand(fromDescriptorCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func preRun(cmd *cobra.Command, _ []string) error {
	return initConfig(cmd)
}

// printDescriptors reads the wallet file at path (or stdin) and prints its
// receive and change descriptors.
func printDescriptors(out io.Writer, path string) error {
	f, err := openFileOrStdin(path)
	if err != nil {
		return fmt.Errorf("could not read wallet file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	log.Debugf("reading wallet file %s", f.Name())
	w, err := electrum2descriptors.ReadWalletFile(f)
	if err != nil {
		return fmt.Errorf("could not parse wallet file: %w", err)
	}
	log.WithFields(log.Fields{
		"wallet_type": w.WalletType.String(),
		"keystores":   len(w.Keystores),
	}).Debug("wallet file parsed")

	receive, change, err := w.ToDescriptors()
	if err != nil {
		return fmt.Errorf("could not build descriptors: %w", err)
	}

	if GetBool(ChecksumKey) {
		if receive, err = descriptor.AppendChecksum(receive); err != nil {
			return err
		}
		if change, err = descriptor.AppendChecksum(change); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", receive, change)
	return err
}

func openFileOrStdin(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	if fi, _ := os.Stdin.Stat(); path == "" && (fi.Mode()&os.ModeNamedPipe) != 0 {
		return os.Stdin, nil
	}

	// G304: path is user-provided input, which is expected for a CLI tool
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return f, nil
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}

	return ansi
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stderr.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}

	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// printError writes err to w, as a styled block when w is a terminal.
func printError(w *os.File, err error) {
	msg := err.Error()
	if hint := errorHint(err); hint != "" {
		msg += "\n\n" + hint
	}

	if !isatty.IsTerminal(w.Fd()) {
		_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
		return
	}

	b := strings.Builder{}
	b.WriteRune('\n')
	renderBlock(&b, errorStyle, getWidth(maxWidth), msg)
	b.WriteRune('\n')
	_, _ = fmt.Fprint(w, b.String())
}

// errorHint suggests a fix for the common failures.
func errorHint(err error) string {
	switch {
	case errors.Is(err, errors.MalformedDocument):
		return "Encrypted wallet files are not JSON: disable the wallet password in Electrum first."
	case errors.Is(err, errors.UnrecognizedField):
		return "The wallet file holds a section this tool does not know."
	case errors.Is(err, errors.UnrecognizedWalletType):
		return "Only standard and m-of-n wallets can be converted."
	case errors.Is(err, errors.InsufficientSigners):
		return "A multisig descriptor needs at least two keys."
	case errors.Is(err, errors.UnrecognizedDescriptor):
		return "Descriptors must use the receive branch, for example wpkh(xpub.../0/*)."
	default:
		return ""
	}
}
