package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbryar/humanname/name"
)

var eqCmd = &cobra.Command{
	Use:   "eq <name1> <name2>|- <name>",
	Short: "Check whether two names could plausibly denote the same person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			return eqStdin(cmd, args[1])
		}
		return eqTwo(cmd, args[0], args[1])
	},
}

func eqTwo(cmd *cobra.Command, a, b string) error {
	na, okA := name.Parse(a)
	nb, okB := name.Parse(b)
	if !okA || !okB {
		fmt.Fprintln(cmd.OutOrStdout(), "parse failed!")
		os.Exit(1)
		return nil
	}
	if !na.ConsistentWith(nb) {
		fmt.Fprintln(cmd.OutOrStdout(), "n")
		os.Exit(1)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "y")
	return nil
}

func eqStdin(cmd *cobra.Command, reference string) error {
	na, ok := name.Parse(reference)
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "parse failed!")
		os.Exit(1)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		nb, ok := name.Parse(line)
		if !ok {
			continue
		}
		if na.ConsistentWith(nb) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(eqCmd)
}
