package main

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/dualdate"
)

const (
	// Maximum input size; larger input is rejected, never truncated.
	maxCSVInputSize int64 = 64 * 1024 * 1024

	encodingUTF8     = "utf-8"
	encodingShiftJIS = "shift_jis"

	// encodingEnv overrides the --encoding default.
	encodingEnv = "DUALDATE_ENCODING"
)

type convertOptions struct {
	input    string
	output   string
	column   int
	encoding string
	header   bool
}

func newConvertCmd(logger *logrus.Logger) *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Append display and UTC wire columns to a CSV column of wire strings",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			in, closeIn, err := openInput(opts.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()

			r, err := decodeInput(in, opts.encoding, maxCSVInputSize)
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(opts.output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeOut(err != nil); err == nil {
					err = cerr
				}
			}()

			n, err := convertCSV(r, out, opts.column, opts.header)
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"rows":     n,
				"column":   opts.column,
				"encoding": opts.encoding,
			}).Info("converted")
			return nil
		},
	}

	defaultEncoding := strings.TrimSpace(os.Getenv(encodingEnv))
	if defaultEncoding == "" {
		defaultEncoding = encodingUTF8
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input CSV path (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Output CSV path (- for stdout)")
	cmd.Flags().IntVarP(&opts.column, "column", "c", 0, "Zero-based index of the column holding wire strings")
	cmd.Flags().StringVar(&opts.encoding, "encoding", defaultEncoding, "Input encoding: utf-8 or shift_jis (env "+encodingEnv+")")
	cmd.Flags().BoolVar(&opts.header, "header", true, "Treat the first row as a header")
	return cmd
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput returns the output writer and its closer. For a file, the closer
// reports the Close error and removes the file when failed is set or Close
// fails, so no partial output is left behind.
func openOutput(path string, stdout io.Writer) (io.Writer, func(failed bool) error, error) {
	if path == "" || path == "-" {
		return stdout, func(bool) error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating output")
	}
	return f, func(failed bool) error {
		err := f.Close()
		if failed || err != nil {
			_ = os.Remove(path)
		}
		return errors.Wrap(err, "closing output")
	}, nil
}

// cappedReader passes through at most limit bytes of r and fails once r
// holds more, instead of truncating silently.
type cappedReader struct {
	r         io.Reader
	limit     int64
	remaining int64
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: r, limit: limit, remaining: limit}
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.remaining <= 0 {
		var extra [1]byte
		n, err := c.r.Read(extra[:])
		if n > 0 {
			return 0, errors.Errorf("input exceeds %d bytes", c.limit)
		}
		return 0, err
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	return n, err
}

// decodeInput returns r as UTF-8. Input longer than limit bytes fails.
func decodeInput(r io.Reader, encoding string, limit int64) (io.Reader, error) {
	limited := newCappedReader(r, limit)
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case encodingUTF8, "utf8", "":
		return limited, nil
	case encodingShiftJIS, "sjis", "shift-jis", "cp932":
		return transform.NewReader(limited, japanese.ShiftJIS.NewDecoder()), nil
	default:
		return nil, errors.Errorf("unsupported encoding %q (want %s or %s)", encoding, encodingUTF8, encodingShiftJIS)
	}
}

// convertCSV copies every record of r to w with two columns appended: the
// display fields and the UTC wire encoding of the wire string in column.
// It returns the number of data rows converted. Rows whose column is blank
// get two blank columns.
func convertCSV(r io.Reader, w io.Writer, column int, header bool) (int, error) {
	if column < 0 {
		return 0, errors.Errorf("column must be >= 0, got %d", column)
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(w)

	lineNum := 0
	if header {
		record, err := reader.Read()
		if err == io.EOF {
			return 0, errors.New("reading header: empty input")
		}
		if err != nil {
			return 0, errors.Wrap(err, "reading header")
		}
		lineNum++
		if column >= len(record) {
			return 0, errors.Errorf("header has %d columns, column %d out of range", len(record), column)
		}
		if err := writer.Write(append(record, "display", "wire")); err != nil {
			return 0, err
		}
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, errors.Wrapf(err, "line %d", lineNum+1)
		}
		lineNum++

		if column >= len(record) {
			return rows, errors.Errorf("line %d: expected at least %d columns, got %d", lineNum, column+1, len(record))
		}

		raw := strings.TrimSpace(record[column])
		if raw == "" {
			record = append(record, "", "")
		} else {
			d, err := dualdate.FromWireString(raw)
			if err != nil {
				return rows, errors.Wrapf(err, "line %d", lineNum)
			}
			record = append(record, d.String(), d.ToWireString())
		}

		if err := writer.Write(record); err != nil {
			return rows, err
		}
		rows++
	}

	writer.Flush()
	return rows, writer.Error()
}
