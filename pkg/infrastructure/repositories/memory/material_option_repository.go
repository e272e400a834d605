package memory

import (
	"fmt"

	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
)

// MaterialOptionRepository provides in-memory material option storage
type MaterialOptionRepository struct {
	options    []entities.MaterialOption
	optionsMap map[entities.MaterialOptionID]int
}

// NewMaterialOptionRepository creates a new in-memory material option repository
func NewMaterialOptionRepository(expectedOptions int) *MaterialOptionRepository {
	return &MaterialOptionRepository{
		options:    make([]entities.MaterialOption, 0, expectedOptions),
		optionsMap: make(map[entities.MaterialOptionID]int, expectedOptions),
	}
}

// Verify interface compliance
var _ repositories.MaterialOptionRepository = (*MaterialOptionRepository)(nil)

// LoadMaterialOptions loads material options into the repository
func (r *MaterialOptionRepository) LoadMaterialOptions(options []*entities.MaterialOption) error {
	for _, option := range options {
		if err := r.SaveMaterialOption(option); err != nil {
			return err
		}
	}
	return nil
}

// SaveMaterialOption adds a material option, rejecting duplicate ids
func (r *MaterialOptionRepository) SaveMaterialOption(option *entities.MaterialOption) error {
	if option == nil {
		return fmt.Errorf("material option cannot be nil")
	}
	if _, exists := r.optionsMap[option.ID]; exists {
		return fmt.Errorf("material option already exists: %s", option.ID)
	}
	r.optionsMap[option.ID] = len(r.options)
	r.options = append(r.options, *option)
	return nil
}

// GetMaterialOption returns the material option with the given id
func (r *MaterialOptionRepository) GetMaterialOption(id entities.MaterialOptionID) (*entities.MaterialOption, error) {
	index, exists := r.optionsMap[id]
	if !exists {
		return nil, fmt.Errorf("material option %s: %w", id, repositories.ErrNotFound)
	}
	return &r.options[index], nil
}

// GetAllMaterialOptions returns all material options in load order
func (r *MaterialOptionRepository) GetAllMaterialOptions() ([]*entities.MaterialOption, error) {
	options := make([]*entities.MaterialOption, 0, len(r.options))
	for i := range r.options {
		options = append(options, &r.options[i])
	}
	return options, nil
}
