// Command typeflow parses, encodes, decodes and browses delimited text
// records.
//
// Usage:
//
//	typeflow parse  data.csv --types int64,string,skip,double
//	typeflow encode data.csv --types int64,string -o data.bin
//	typeflow decode data.bin --types int64,string
//	typeflow browse data.csv --config job.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
