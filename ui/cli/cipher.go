// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/i18n"
	"github.com/payveri/affine/internal/logging"
	"github.com/payveri/affine/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// localizedError shows a translated message while keeping the underlying
// sentinel reachable through errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

func localize(err error, k affine.Key) error {
	return &localizedError{msg: ui.Message(err, k), err: err}
}

// addKeyFlags registers -a and -b. Their defaults are only placeholders:
// unset flags fall back to the configured key.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("a", "a", 5, "Multiplier a (must be coprime with 26)")
	cmd.Flags().IntP("b", "b", 8, "Shift b (0-25)")
}

// keyFromFlags resolves the key from -a/-b or the config and validates it.
func keyFromFlags(cmd *cobra.Command) (affine.Key, error) {
	k := affine.Key{A: appConfig.Key.A, B: appConfig.Key.B}
	if cmd.Flags().Changed("a") {
		k.A, _ = cmd.Flags().GetInt("a")
	}
	if cmd.Flags().Changed("b") {
		k.B, _ = cmd.Flags().GetInt("b")
	}
	k, err := ui.CheckKey(k, appConfig.Key.StrictB)
	if err != nil {
		return k, localize(err, k)
	}
	return k, nil
}

// inputText joins args, or reads stdin when no args are given and stdin is
// not an interactive terminal.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", errors.New(i18n.T("error.empty_input"))
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New(i18n.T("error.empty_input"))
	}
	return text, nil
}

func printResult(cmd *cobra.Command, result string) error {
	fmt.Fprintln(cmd.OutOrStdout(), result)
	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := ui.DefaultClipboard().WriteAll(result); err != nil {
			return errors.New(i18n.T("error.clipboard", err))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
	}
	return nil
}

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text with an affine key",
		Long: `Encrypts the given text, or stdin when no text is given.
Letters are mapped with E(x) = (a·x + b) mod 26 and keep their case;
digits, punctuation and whitespace pass through unchanged.`,
		Example: `  affine encrypt -a 5 -b 8 HELLO
  echo "PayVeri2025-Token" | affine encrypt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := keyFromFlags(cmd)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			logging.Debugf("encrypting %d bytes with key %s", len(text), k)
			return printResult(cmd, k.Encrypt(text))
		},
	}
	addKeyFlags(cmd)
	cmd.Flags().Bool("copy", false, "Also copy the result to the clipboard")
	return cmd
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt text with an affine key",
		Long: `Decrypts the given text, or stdin when no text is given, using
D(y) = a⁻¹·(y − b) mod 26. Fails when a has no inverse modulo 26.`,
		Example: `  affine decrypt -a 5 -b 8 RCLLA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := keyFromFlags(cmd)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			out, err := k.Decrypt(text)
			if err != nil {
				return localize(err, k)
			}
			logging.Debugf("decrypted %d bytes with key %s", len(text), k)
			return printResult(cmd, out)
		},
	}
	addKeyFlags(cmd)
	cmd.Flags().Bool("copy", false, "Also copy the result to the clipboard")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a key and show the inverse of a",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := keyFromFlags(cmd)
			if err != nil {
				return err
			}
			inv, err := k.Inverse()
			if err != nil {
				return localize(err, k)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.key_valid", k, inv))
			return nil
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every usable multiplier with its inverse and substitution alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "A\tINVERSE\tALPHABET (b=0)")
			for _, a := range affine.ValidMultipliers() {
				inv, _ := affine.ModInverse(a, affine.AlphabetSize)
				fmt.Fprintf(w, "%d\t%d\t%s\n", a, inv, affine.Encrypt(alphabet, a, 0))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d keys (%d multipliers × %d shifts)\n",
				affine.KeySpaceSize, len(affine.ValidMultipliers()), affine.AlphabetSize)
			return nil
		},
	}
}

func newCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover candidate keys from a known plaintext/ciphertext pair",
		Long: `Tries all 312 valid keys and prints every key that maps the
known plaintext onto the ciphertext.`,
		Example: `  affine crack --plain HELLO --cipher RCLLA`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetString("plain")
			cipher, _ := cmd.Flags().GetString("cipher")

			keys, err := affine.RecoverKeys(cmd.Context(), plain, cipher)
			if err != nil {
				return localize(err, affine.Key{})
			}
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, i18n.T("cli.no_match"))
				return nil
			}
			fmt.Fprintln(out, i18n.T("cli.candidates", len(keys)))
			for _, k := range keys {
				fmt.Fprintf(out, "  %s\n", k)
			}
			return nil
		},
	}
	cmd.Flags().String("plain", "", "Known plaintext")
	cmd.Flags().String("cipher", "", "Matching ciphertext")
	_ = cmd.MarkFlagRequired("plain")
	_ = cmd.MarkFlagRequired("cipher")
	return cmd
}
