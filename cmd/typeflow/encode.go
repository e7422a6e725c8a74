package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/typeflow/memory"
	"github.com/wippyai/typeflow/tuple"
)

var outFile string

var encodeCmd = &cobra.Command{
	Use:   "encode FILE",
	Short: "Parse a delimited file and write its records in binary form",
	Long: `Parse a delimited file and write every record with the tuple
serializer derived from the declared column types. Records are written
back to back; decode them with the same types.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (required)")
	_ = encodeCmd.MarkFlagRequired("output")
}

func runEncode(cmd *cobra.Command, args []string) error {
	f, err := loadFormat(cmd)
	if err != nil {
		return err
	}
	tt, err := f.TupleType()
	if err != nil {
		return err
	}
	s, err := tt.CreateTupleSerializer()
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	bw := bufio.NewWriter(out)

	r, err := f.NewReader(in)
	if err != nil {
		return err
	}
	defer r.Close()

	buf := memory.GetOutput()
	defer memory.Release(buf)
	rec := tuple.New(tt.Arity())
	var written int64
	for {
		holders, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		copy(rec.Fields(), holders)
		if err := s.Serialize(rec, buf); err != nil {
			return err
		}
		n, err := buf.WriteTo(bw)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		written += n
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	summary(cmd.ErrOrStderr(), r.Stats())
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s to %s\n", humanize.Bytes(uint64(written)), outFile)
	return nil
}
