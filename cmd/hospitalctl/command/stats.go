package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewell-org/hospital/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the live stats snapshot",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printStats) },
}

func printStats(reporter stats.Reporter) error {
	snapshot := reporter.Snapshot(context.TODO())

	fmt.Printf("wait=%dm beds=%d%% doctors=%d activity=%d\n",
		snapshot.WaitMinutes, snapshot.BedOccupancyPercent, snapshot.DoctorsOnDuty, snapshot.ActivityScore)
	if snapshot.Note != "" {
		fmt.Printf("note: %s\n", snapshot.Note)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
