package encode

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/armin/cmd/settings"
	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/hw/arm/listing"
	"github.com/Manu343726/armin/pkg/hw/arm/program"
	"github.com/Manu343726/armin/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var ErrInvalidFormat error = errors.New("invalid output format")

// Output formats
const (
	Format_Hex    = "hex"
	Format_Binary = "bin"
)

var encodeOutput string

var EncodeCmd = &cobra.Command{
	Use:   "encode <listing.yaml>",
	Short: "Encode an instruction listing into machine code",
	Long: `Loads a YAML instruction listing and encodes every entry into an ARM machine word.

Output formats:
  hex  - One line per word: address, word and instruction (default)
  bin  - Raw words in the selected byte order. Refused when the output is a terminal

The core variant and operand policy are taken from the --cpu and --policy flags, then from the
listing itself, then from the environment and the config file.

Examples:
  # Hex dump to stdout
  armin encode program.yaml

  # Big endian raw binary
  armin encode --format bin --endian big -o program.bin program.yaml

  # Mask out of range operands instead of failing
  armin encode --policy wrap program.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	EncodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file (default: stdout)")
	EncodeCmd.Flags().StringP("format", "f", Format_Hex, "Output format: hex, bin")
	EncodeCmd.Flags().String("endian", "little", "Byte order of the bin format: little, big")

	cobra.CheckErr(viper.BindPFlag(settings.Key_Format, EncodeCmd.Flags().Lookup("format")))
	cobra.CheckErr(viper.BindPFlag(settings.Key_Endian, EncodeCmd.Flags().Lookup("endian")))
}

func run(cmd *cobra.Command, path string) error {
	logger, closer, err := settings.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	format := strings.ToLower(viper.GetString(settings.Key_Format))
	if format != Format_Hex && format != Format_Binary {
		return utils.MakeError(ErrInvalidFormat, "'%v'. Valid formats: %v, %v", format, Format_Hex, Format_Binary)
	}

	l, words, err := settings.Assemble(cmd, path, logger)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()

	if encodeOutput != "" {
		file, err := os.Create(encodeOutput)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	} else if format == Format_Binary && isTerminal(out) {
		return utils.MakeError(ErrInvalidFormat, "refusing to write raw binary to a terminal, use -o")
	}

	return write(out, format, l, words)
}

func write(out io.Writer, format string, l *listing.Listing, words []instructions.Word) error {
	if format == Format_Hex {
		return program.WriteHexDump(out, l.Origin, words, l.Instructions)
	}

	order, err := program.ParseByteOrder(viper.GetString(settings.Key_Endian))
	if err != nil {
		return err
	}

	return program.WriteBinary(out, words, order)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
