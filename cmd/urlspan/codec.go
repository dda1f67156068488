package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"nikand.dev/go/urlspan"
)

var (
	codecSize    int
	encodeUpper  bool
	encodeStrict bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Percent-encode text",
	Long: `Escape every byte outside the unreserved set as %xx.
The default set is letters, digits and - . _ ~ ! * ' ( ); --strict drops ! * ' ( ).`,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode percent-encoded text",
	RunE:  runDecode,
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().IntVar(&codecSize, "size", 0, "Output buffer size including the terminating byte (0: fit the whole output)")
	}

	encodeCmd.Flags().BoolVar(&encodeUpper, "upper", false, "Use uppercase hex digits")
	encodeCmd.Flags().BoolVar(&encodeStrict, "strict", false, "Use the RFC 3986 unreserved set")
}

func runEncode(cmd *cobra.Command, args []string) error {
	texts, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	var flags urlspan.Esc

	if encodeUpper {
		flags |= urlspan.EscUpper
	}
	if encodeStrict {
		flags |= urlspan.EscStrict
	}

	out := cmd.OutOrStdout()

	for _, t := range texts {
		size := codecSize
		if size <= 0 {
			size = urlspan.EncodedLen(t, flags) + 1
		}

		dst := make([]byte, size)

		s, n := urlspan.Encode(dst, t, flags)
		if s.Is(urlspan.Truncated) {
			warnf(cmd, "encode %q: output truncated to %d bytes\n", t, n)
		}

		logf(cmd, "encode %q: %d -> %d bytes\n", t, len(t), n)

		fmt.Fprintf(out, "%s\n", dst[:n])
	}

	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	texts, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, t := range texts {
		size := codecSize
		if size <= 0 {
			size = len(t) + 1
		}

		dst := make([]byte, size)

		s, n := urlspan.Decode(dst, t)
		if s.Err() {
			return errors.Wrapf(s, "decode %q", t)
		}

		if s.Is(urlspan.Truncated) {
			warnf(cmd, "decode %q: output truncated to %d bytes\n", t, n)
		}

		logf(cmd, "decode %q: %d -> %d bytes\n", t, len(t), n)

		fmt.Fprintf(out, "%s\n", dst[:n])
	}

	return nil
}
