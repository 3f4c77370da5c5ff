// Package mapper converts between persisted aircraft records and their wire shape.
package mapper

import (
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos"
	gormModels "github.com/itallokavin/gestao-aeronaves/internal/models/gorm"
)

func ToDTO(entity gormModels.Aircraft) dtos.Aircraft {
	year := entity.Year
	return dtos.Aircraft{
		ID:          entity.ID,
		Name:        entity.Name,
		Brand:       dtos.Brand(entity.Brand),
		Year:        &year,
		Description: entity.Description,
		Sold:        entity.Sold,
		Created:     entity.Created,
		Updated:     entity.Updated,
	}
}

// ToEntity maps a DTO onto a record. A nil year maps to zero.
func ToEntity(dto dtos.Aircraft) gormModels.Aircraft {
	var year int
	if dto.Year != nil {
		year = *dto.Year
	}
	return gormModels.Aircraft{
		ID:          dto.ID,
		Name:        dto.Name,
		Brand:       string(dto.Brand),
		Year:        year,
		Description: dto.Description,
		Sold:        dto.Sold,
		Created:     dto.Created,
		Updated:     dto.Updated,
	}
}

func ToDTOs(entities []gormModels.Aircraft) []dtos.Aircraft {
	out := make([]dtos.Aircraft, 0, len(entities))
	for _, e := range entities {
		out = append(out, ToDTO(e))
	}
	return out
}
