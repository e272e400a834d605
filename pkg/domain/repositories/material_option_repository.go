package repositories

import (
	"errors"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

// ErrNotFound is returned when a reference record does not exist
var ErrNotFound = errors.New("not found")

// MaterialOptionRepository provides access to material option reference data
type MaterialOptionRepository interface {
	GetMaterialOption(id entities.MaterialOptionID) (*entities.MaterialOption, error)
	GetAllMaterialOptions() ([]*entities.MaterialOption, error)
	LoadMaterialOptions(options []*entities.MaterialOption) error
}
