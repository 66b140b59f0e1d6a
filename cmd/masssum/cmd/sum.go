package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/masssum/hashfuncs"
	"massnet.org/masssum/logging"
	"massnet.org/masssum/sha256"
	"massnet.org/masssum/version"
)

// ErrDigestMismatch is returned by verify when the computed digest differs.
var ErrDigestMismatch = errors.New("digest mismatch")

func formatDigest(d sha256.Digest, format string) (string, error) {
	switch format {
	case formatHex:
		return d.String(), nil
	case formatWords:
		return d.WordString(), nil
	default:
		return "", errors.Wrapf(errUnknownFormat, "%q", format)
	}
}

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum [file...]",
	Short: "Print the SHA-256 digest of each file, or of stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{stdinName}
		}
		logging.CPrint(logging.DEBUG, "sum called", logging.LogFormat{"inputs": len(args)})

		results, err := hashInputs(args, config.Workers, cmd.InOrStdin())
		if err != nil {
			return err
		}

		var failed int
		for _, res := range results {
			if res.err != nil {
				failed++
				logging.CPrint(logging.ERROR, "failed to hash input", logging.LogFormat{"name": res.name, "err": res.err})
				continue
			}
			s, err := formatDigest(res.digest, config.Format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s, res.name)
		}
		if failed > 0 {
			return errors.Errorf("%d of %d inputs failed", failed, len(results))
		}
		return nil
	},
}

// stringCmd represents the string command
var stringCmd = &cobra.Command{
	Use:   "string <text>",
	Short: "Print the SHA-256 digest of text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := sha256.Sum256([]byte(args[0]))
		if err != nil {
			return err
		}
		s, err := formatDigest(d, config.Format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file> <digest>",
	Short: "Check a file against an expected digest",
	Long: `Check a file against an expected digest. The digest may be 64 hex
characters or eight space separated 8-digit words; case is ignored.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		want, err := sha256.ParseDigest(args[1])
		if err != nil {
			logging.CPrint(logging.ERROR, "invalid digest", logging.LogFormat{"digest": args[1]})
			return err
		}
		res := hashInput(args[0], newSharedInput(cmd.InOrStdin()))
		if res.err != nil {
			return res.err
		}
		if !res.digest.Equal(want) {
			logging.CPrint(logging.WARN, "digest mismatch", logging.LogFormat{
				"name": res.name,
				"want": want.String(),
				"got":  res.digest.String(),
			})
			return errors.Wrap(ErrDigestMismatch, res.name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", res.name)
		return nil
	},
}

// doubleCmd represents the double command
var doubleCmd = &cobra.Command{
	Use:   "double <text>",
	Short: "Print sha256(sha256(text)) in hex",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(hashfuncs.Hash256([]byte(args[0]))))
	},
}

// hash160Cmd represents the hash160 command
var hash160Cmd = &cobra.Command{
	Use:   "hash160 <text>",
	Short: "Print ripemd160(sha256(text)) in hex",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(hashfuncs.Hash160([]byte(args[0]))))
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
	},
}
