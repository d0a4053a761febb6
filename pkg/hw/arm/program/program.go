// Package program turns sequences of symbolic instructions into machine code and writes it out
package program

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/logging"
	"github.com/Manu343726/armin/pkg/utils"
)

var ErrInvalidByteOrder error = errors.New("invalid byte order")

var byteOrders = map[string]binary.ByteOrder{
	"little": binary.LittleEndian,
	"big":    binary.BigEndian,
}

// Returns the byte order with the given name (little or big). An empty name means little endian
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	if strings.TrimSpace(name) == "" {
		return binary.LittleEndian, nil
	}

	if order, ok := byteOrders[strings.ToLower(strings.TrimSpace(name))]; ok {
		return order, nil
	}

	return nil, utils.MakeError(ErrInvalidByteOrder, "'%v'. Valid byte orders: little, big", name)
}

// Encodes all the instructions, stopping at the first error. A nil logger discards the trace
func Assemble(encoder instructions.Encoder, instrs []instructions.Instruction, logger *slog.Logger) ([]instructions.Word, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	words := make([]instructions.Word, 0, len(instrs))

	for i := range instrs {
		word, err := encoder.Encode(instrs[i])
		if err != nil {
			logger.Error("encoding failed", "index", i, "instruction", instrs[i].String(), "error", err)
			return nil, utils.MakeError(err, "instruction #%v (%v)", i, instrs[i].Mnemonic())
		}

		logger.Debug("encoded", "index", i, "instruction", instrs[i].String(), "word", word.String())
		words = append(words, word)
	}

	logger.Info("assembled program", "instructions", len(words), "cpu", encoder.CPU.String(), "policy", encoder.Policy.String())

	return words, nil
}

// Writes the raw machine words with the given byte order
func WriteBinary(w io.Writer, words []instructions.Word, order binary.ByteOrder) error {
	buffer := make([]byte, len(words)*4)

	for i, word := range words {
		order.PutUint32(buffer[i*4:], uint32(word))
	}

	_, err := w.Write(buffer)
	return err
}

// Writes one line per word with its address, its value and the instruction it encodes.
// Labelled instructions are preceded by a "label:" line. instrs may be shorter than words
func WriteHexDump(w io.Writer, origin uint32, words []instructions.Word, instrs []instructions.Instruction) error {
	for i, word := range words {
		address := origin + uint32(i)*4
		text := ""

		if i < len(instrs) {
			if instrs[i].Label != "" {
				if _, err := fmt.Fprintf(w, "%v:\n", instrs[i].Label); err != nil {
					return err
				}
			}

			text = instrs[i].String()
		}

		if _, err := fmt.Fprintln(w, strings.TrimRight(fmt.Sprintf("%08x: %08x  %s", address, uint32(word), text), " ")); err != nil {
			return err
		}
	}

	return nil
}
