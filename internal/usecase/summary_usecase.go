package usecase

import (
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

// Summarize - сводка по районам. Для пустого списка средний уровень 0.
func Summarize(districts []domain.District) *dto.SummaryResponse {
	resp := &dto.SummaryResponse{
		DistrictCount: len(districts),
		Districts:     make([]dto.DistrictStatusRow, 0, len(districts)),
	}

	var waterSum float64
	for _, d := range districts {
		resp.TotalSRR += d.Personnel.SRR
		resp.TotalHealth += d.Personnel.Health
		resp.TotalLog += d.Personnel.Log
		waterSum += d.WaterLevel

		status := d.Status()
		if status == domain.WaterStatusHigh {
			resp.HighWaterCount++
		}

		resp.Districts = append(resp.Districts, dto.DistrictStatusRow{
			ID:             d.ID,
			Name:           d.Name,
			WaterLevel:     d.WaterLevel,
			Status:         status,
			Label:          status.Label(),
			TotalPersonnel: d.Personnel.Total(),
		})
	}

	resp.TotalPersonnel = resp.TotalSRR + resp.TotalHealth + resp.TotalLog
	if len(districts) > 0 {
		resp.AvgWaterLevel = waterSum / float64(len(districts))
	}

	return resp
}

// SummaryUseCase - сводка по текущему состоянию хранилища
type SummaryUseCase struct {
	store *DistrictStore
}

// NewSummaryUseCase - создание SummaryUseCase
func NewSummaryUseCase(store *DistrictStore) *SummaryUseCase {
	return &SummaryUseCase{store: store}
}

// GetSummary - пересчитывается по всему хранилищу при каждом вызове
func (uc *SummaryUseCase) GetSummary() *dto.SummaryResponse {
	return Summarize(uc.store.List())
}
