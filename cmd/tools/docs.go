package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/utils"
	"github.com/spf13/cobra"
)

const docsLeftPad = 2

var classNames = utils.Map(instructions.InstructionClasses(), instructions.InstructionClass.String)

var docsCmd = &cobra.Command{
	Use:   "docs [class]",
	Short: "Show instruction encoding documentation",
	Long: `Dumps the bit layout documentation of the specified instruction class, or of all of them.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported classes:
` + strings.Join(utils.Map(classNames, func(class string) string { return "  " + class }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.MaximumNArgs(1)),
	ValidArgs: classNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, _ := cmd.Flags().GetString("output")

		var out io.Writer = cmd.OutOrStdout()
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		return writeDocs(out, args)
	},
}

func writeDocs(out io.Writer, args []string) error {
	classes := instructions.AllClasses()

	if len(args) > 0 {
		class, err := instructions.ParseInstructionClass(args[0])
		if err != nil {
			return err
		}

		classes = []*instructions.ClassDescriptor{class.Descriptor()}
	}

	for _, class := range classes {
		if _, err := fmt.Fprintln(out, class.Documentation(docsLeftPad)); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
