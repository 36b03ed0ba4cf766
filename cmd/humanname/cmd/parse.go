package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbryar/humanname/name"
)

// prettyNameParts mirrors the original tool's serialized name shape: a
// first initial, a surname, and every other field present only when the
// parse actually populated it.
type prettyNameParts struct {
	FirstInitial       string `json:"first_initial"`
	Surname            string `json:"surname"`
	GivenName          string `json:"given_name,omitempty"`
	MiddleInitials     string `json:"middle_initials,omitempty"`
	MiddleNames        string `json:"middle_names,omitempty"`
	GenerationalSuffix string `json:"generational_suffix,omitempty"`
	HonorificPrefix    string `json:"honorific_prefix,omitempty"`
	HonorificSuffix    string `json:"honorific_suffix,omitempty"`
}

func toPrettyParts(n *name.Name) prettyNameParts {
	return prettyNameParts{
		FirstInitial:       string(n.FirstInitial()),
		Surname:            n.Surname(),
		GivenName:          n.GivenName(),
		MiddleInitials:     n.MiddleInitials(),
		MiddleNames:        n.MiddleNames(),
		GenerationalSuffix: n.GenerationalSuffix(),
		HonorificPrefix:    n.HonorificPrefix(),
		HonorificSuffix:    n.HonorificSuffix(),
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse <name>|-",
	Short: "Parse a name and print its structured form as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			return parseStdin(cmd)
		}
		return parseOne(cmd, strings.Join(args, " "))
	},
}

func parseOne(cmd *cobra.Command, input string) error {
	n, ok := name.Parse(input)
	if !ok {
		os.Exit(1)
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(toPrettyParts(n)); err != nil {
		return fmt.Errorf("encode parsed name: %w", err)
	}
	return nil
}

func parseStdin(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(os.Stdin)
	enc := json.NewEncoder(cmd.OutOrStdout())
	for scanner.Scan() {
		n, ok := name.Parse(scanner.Text())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout())
			continue
		}
		if err := enc.Encode(toPrettyParts(n)); err != nil {
			return fmt.Errorf("encode parsed name: %w", err)
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
