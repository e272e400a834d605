package memory

import (
	"fmt"

	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
)

// MachineOptionRepository provides in-memory machine option storage
type MachineOptionRepository struct {
	options    []entities.MachineOption
	optionsMap map[entities.MachineOptionID]int
}

// NewMachineOptionRepository creates a new in-memory machine option repository
func NewMachineOptionRepository(expectedOptions int) *MachineOptionRepository {
	return &MachineOptionRepository{
		options:    make([]entities.MachineOption, 0, expectedOptions),
		optionsMap: make(map[entities.MachineOptionID]int, expectedOptions),
	}
}

var _ repositories.MachineOptionRepository = (*MachineOptionRepository)(nil)

// LoadMachineOptions loads machine options into the repository
func (r *MachineOptionRepository) LoadMachineOptions(options []*entities.MachineOption) error {
	for _, option := range options {
		if err := r.SaveMachineOption(option); err != nil {
			return err
		}
	}
	return nil
}

// SaveMachineOption adds a machine option, rejecting duplicate ids
func (r *MachineOptionRepository) SaveMachineOption(option *entities.MachineOption) error {
	if option == nil {
		return fmt.Errorf("machine option cannot be nil")
	}
	if _, exists := r.optionsMap[option.ID]; exists {
		return fmt.Errorf("machine option already exists: %s", option.ID)
	}
	r.optionsMap[option.ID] = len(r.options)
	r.options = append(r.options, *option)
	return nil
}

// GetMachineOption returns the machine option with the given id
func (r *MachineOptionRepository) GetMachineOption(id entities.MachineOptionID) (*entities.MachineOption, error) {
	index, exists := r.optionsMap[id]
	if !exists {
		return nil, fmt.Errorf("machine option %s: %w", id, repositories.ErrNotFound)
	}
	return &r.options[index], nil
}

// GetAllMachineOptions returns all machine options in load order
func (r *MachineOptionRepository) GetAllMachineOptions() ([]*entities.MachineOption, error) {
	options := make([]*entities.MachineOption, 0, len(r.options))
	for i := range r.options {
		options = append(options, &r.options[i])
	}
	return options, nil
}
