package command

import (
	"github.com/spf13/cobra"
)

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Commands for working with doctor records",
}
