package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/typeflow/memory"
	"github.com/wippyai/typeflow/tuple"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Print the records of a file written by encode",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
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

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	in := memory.NewStreamInput(file)

	p := &recordPrinter{w: cmd.OutOrStdout(), styled: styled(cmd.OutOrStdout())}
	p.header(headers(f.Projection()))

	var (
		rec   *tuple.Tuple
		count int64
	)
	for {
		start := in.Position()
		rec, err = s.Deserialize(rec, in)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("record %d at byte %d: %w", count+1, start, err)
		}
		p.record(rec.Fields())
		count++
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s records, %s\n",
		humanize.Comma(count), humanize.Bytes(uint64(in.Position())))
	return nil
}
