package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smolccgo/pkg/compiler"
)

var (
	checkFlag   bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "smolccgo <source>",
	Short: "Compile a small C subset straight to AArch64 assembly text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}

		src := args[0]
		logrus.Debugf("compiling %d bytes of source", len(src))

		asmText, err := compiler.Compile(1, src, compiler.Options{Check: checkFlag})
		if err != nil {
			logrus.Fatal(err)
		}

		fmt.Print(asmText)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "validate the generated assembly's structural shape before printing it")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug-level progress to stderr")
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
