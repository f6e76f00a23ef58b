package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fourcc/pkg/api"
	"github.com/ssargent/fourcc/pkg/fourcc"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Describe a code given as four bytes of text",
		Long: `Describe a code given as text. The argument must be exactly four bytes.

Example:
  fourcc show moov
  fourcc show 'mp4 ' -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := fourcc.Parse(args[0])
			if err != nil {
				return err
			}
			return printDescription(cmd.OutOrStdout(), configFrom(cmd).Output, code)
		},
	}
}

func newFromIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-int <value>",
		Short: "Describe the code for an unsigned 32-bit integer",
		Long: `Describe the code for an integer, decomposed big-endian. The value may be
decimal, 0x hex, 0o octal or 0b binary.

Example:
  fourcc from-int 0x6d6f6f76
  fourcc from-int 1836019574`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := api.ParseUint32(args[0])
			if err != nil {
				return err
			}
			return printDescription(cmd.OutOrStdout(), configFrom(cmd).Output, code)
		},
	}
}

func newFromHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-hex <hex>",
		Short: "Describe the code for four raw bytes written as hex",
		Long: `Describe the code for four raw bytes given as eight hex digits. Any byte
values are accepted, including ones that are not valid UTF-8.

Example:
  fourcc from-hex 75ff6900`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := api.ParseHex(args[0])
			if err != nil {
				return err
			}
			return printDescription(cmd.OutOrStdout(), configFrom(cmd).Output, code)
		},
	}
}
