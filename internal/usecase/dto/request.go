package dto

import "github.com/emergency-response-dashboard/internal/domain"

// PersonnelRequest - количество персонала в запросе
type PersonnelRequest struct {
	SRR    int `json:"srr" validate:"min=0"`
	Health int `json:"health" validate:"min=0"`
	Log    int `json:"log" validate:"min=0"`
}

// UpdateDistrictRequest - частичное обновление района (PATCH)
type UpdateDistrictRequest struct {
	WaterLevel *float64          `json:"waterLevel,omitempty" validate:"omitempty,min=0"`
	Personnel  *PersonnelRequest `json:"personnel,omitempty" validate:"omitempty"`
}

// ToPatch - преобразование запроса в патч хранилища
func (r UpdateDistrictRequest) ToPatch() domain.DistrictPatch {
	patch := domain.DistrictPatch{WaterLevel: r.WaterLevel}
	if r.Personnel != nil {
		patch.Personnel = &domain.PersonnelCount{
			SRR:    r.Personnel.SRR,
			Health: r.Personnel.Health,
			Log:    r.Personnel.Log,
		}
	}
	return patch
}

// EditFormRequest - сырые поля диалога редактирования.
// Значения разбираются нестрого, всё неразборчивое становится 0.
type EditFormRequest struct {
	WaterLevel string `json:"waterLevel"`
	SRR        string `json:"srr"`
	Health     string `json:"health"`
	Log        string `json:"log"`
}

// DistrictIDParam - идентификатор района из пути
type DistrictIDParam struct {
	ID string `validate:"required,district_id,max=64"`
}
