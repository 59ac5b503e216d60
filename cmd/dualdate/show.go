package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/dualdate"
)

type showOutput struct {
	Input            string `json:"input"`
	DisplayableLocal string `json:"displayable_local"`
	SendableUTC      string `json:"sendable_utc"`
}

func newShowCmd(logger *logrus.Logger) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [wire-string...]",
		Short: "Print the display fields and UTC wire form of each input (stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			outs := make([]showOutput, 0, len(inputs))
			for _, in := range inputs {
				d, err := dualdate.FromWireString(in)
				if err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{"input": in, "wire": d.ToWireString()}).Debug("parsed")
				outs = append(outs, showOutput{
					Input:            in,
					DisplayableLocal: d.String(),
					SendableUTC:      d.ToWireString(),
				})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), outs)
			}
			return writeShowText(cmd.OutOrStdout(), outs)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON instead of text")
	return cmd
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	return lines, nil
}

func writeShowText(w io.Writer, outs []showOutput) error {
	for i, o := range outs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "input:             %s\n---\ndisplayable local: %s\nsendable UTC:      %s\n",
			o.Input, o.DisplayableLocal, o.SendableUTC); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
