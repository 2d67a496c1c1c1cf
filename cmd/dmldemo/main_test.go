package main

import (
	"testing"
	"unicode"

	"github.com/spf13/cobra"
)

func TestCommandHelpIsASCII(t *testing.T) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, r := range c.Short + c.Long {
			if r > unicode.MaxASCII {
				t.Errorf("%s: help text contains %q", c.CommandPath(), r)
				break
			}
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}
