package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a delimited file and print its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := loadFormat(cmd)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	r, err := f.NewReader(in)
	if err != nil {
		return err
	}
	defer r.Close()

	p := &recordPrinter{w: cmd.OutOrStdout(), styled: styled(cmd.OutOrStdout())}
	p.header(headers(f.Projection()))
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		p.record(rec)
	}

	summary(cmd.ErrOrStderr(), r.Stats())
	return nil
}
