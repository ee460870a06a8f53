package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carewell-org/hospital/patients"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
)

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long:  "The list command is used to retrieve a list of patient records",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(service patients.Service) error {
	page := store.DefaultPagination().WithLimit(1000)
	list, err := service.List(context.TODO(), &patients.Filter{}, page, store.DefaultSort())
	if err != nil {
		return err
	}

	for _, patient := range list {
		id := patient.Id.Hex()
		name := fmt.Sprintf("%s %s", pointer.ToString(patient.FirstName), pointer.ToString(patient.LastName))

		fmt.Printf("%s %s mrn=%s\n", id, name, pointer.ToString(patient.Mrn))
	}
	fmt.Printf("Found %v patients\n", len(list))

	return nil
}

func init() {
	patientsCmd.AddCommand(patientsListCmd)
	rootCmd.AddCommand(patientsCmd)
}
