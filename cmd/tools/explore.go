package tools

import (
	"fmt"
	"strings"

	"github.com/Manu343726/armin/cmd/settings"
	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/hw/arm/listing"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

// An encoded listing entry as shown by the explorer
type exploreEntry struct {
	Address uint32
	Word    instructions.Word
	Text    string
	Details string
}

func (e *exploreEntry) Title() string {
	return fmt.Sprintf("%08x: %08x  %v", e.Address, uint32(e.Word), e.Text)
}

func exploreEntries(l *listing.Listing, words []instructions.Word) ([]exploreEntry, error) {
	entries := make([]exploreEntry, 0, len(words))

	for i, word := range words {
		instr := &l.Instructions[i]

		descriptor, err := instr.Descriptor()
		if err != nil {
			return nil, err
		}

		frame, err := descriptor.Frame(word, 1)
		if err != nil {
			return nil, err
		}

		var details strings.Builder

		if instr.Label != "" {
			fmt.Fprintf(&details, "%v:\n", instr.Label)
		}
		fmt.Fprintf(&details, "%v\n\n%v\n%v\n\n", instr.String(), descriptor.Description, descriptor.Class.Descriptor().Title)
		details.WriteString(frame)

		entries = append(entries, exploreEntry{
			Address: l.Address(i),
			Word:    word,
			Text:    instr.String(),
			Details: details.String(),
		})
	}

	return entries, nil
}

func explore(entries []exploreEntry, title string) error {
	app := tview.NewApplication()

	details := tview.NewTextView().SetWrap(false)
	details.SetBorder(true).SetTitle(" fields ")

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(" " + title + " ")

	for _, entry := range entries {
		list.AddItem(tview.Escape(entry.Title()), "", 0, nil)
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		details.SetText(entries[index].Details)
	})

	if len(entries) > 0 {
		details.SetText(entries[0].Details)
	}

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(layout, true).EnableMouse(true).Run()
}

var exploreCmd = &cobra.Command{
	Use:   "explore <listing.yaml>",
	Short: "Browse the encoding of an instruction listing",
	Long: `Encodes a YAML instruction listing and opens an interactive view of the resulting words.
Selecting a word shows the instruction and its bit fields. Press q or Esc to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := settings.Logger()
		if err != nil {
			return err
		}
		defer closer.Close()

		l, words, err := settings.Assemble(cmd, args[0], logger)
		if err != nil {
			return err
		}

		entries, err := exploreEntries(l, words)
		if err != nil {
			return err
		}

		return explore(entries, args[0])
	},
}

func init() {
	ToolsCmd.AddCommand(exploreCmd)
}
