package repositories

import "github.com/vsinha/printshop/pkg/domain/entities"

// MachineOptionRepository provides access to machine option reference data
type MachineOptionRepository interface {
	GetMachineOption(id entities.MachineOptionID) (*entities.MachineOption, error)
	GetAllMachineOptions() ([]*entities.MachineOption, error)
	LoadMachineOptions(options []*entities.MachineOption) error
}
