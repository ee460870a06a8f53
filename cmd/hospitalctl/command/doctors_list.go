package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
)

var onDutyOnly bool

var doctorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List doctors",
	Long:  "The list command is used to retrieve a list of doctor records, optionally restricted to doctors currently on duty",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listDoctors) },
}

func listDoctors(service doctors.Service) error {
	filter := &doctors.Filter{}
	if onDutyOnly {
		filter.OnDuty = pointer.FromAny(true)
	}

	page := store.DefaultPagination().WithLimit(1000)
	list, err := service.List(context.TODO(), filter, page, store.DefaultSort())
	if err != nil {
		return err
	}

	for _, doctor := range list {
		id := doctor.Id.Hex()
		name := fmt.Sprintf("%s %s", pointer.ToString(doctor.FirstName), pointer.ToString(doctor.LastName))
		onDuty := doctor.OnDuty != nil && *doctor.OnDuty

		fmt.Printf("%s %s department=%s onDuty=%v\n", id, name, pointer.ToString(doctor.Department), onDuty)
	}
	fmt.Printf("Found %v doctors\n", len(list))

	return nil
}

func init() {
	doctorsListCmd.Flags().BoolVar(&onDutyOnly, "on-duty", false, "Only list doctors currently on duty")
	doctorsCmd.AddCommand(doctorsListCmd)
	rootCmd.AddCommand(doctorsCmd)
}
