package usecase

import (
	"fmt"
	"strconv"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

// MapUseCase - маркеры и легенда карты
type MapUseCase struct {
	store *DistrictStore
}

// NewMapUseCase - создание MapUseCase
func NewMapUseCase(store *DistrictStore) *MapUseCase {
	return &MapUseCase{store: store}
}

// Markers - по маркеру на район, позиция в процентах от размеров карты
func (uc *MapUseCase) Markers() []dto.MarkerResponse {
	districts := uc.store.List()
	markers := make([]dto.MarkerResponse, 0, len(districts))
	for _, d := range districts {
		markers = append(markers, BuildMarker(d))
	}
	return markers
}

// BuildMarker - позиция, цвет и подсказка маркера
func BuildMarker(d domain.District) dto.MarkerResponse {
	status := d.Status()
	return dto.MarkerResponse{
		ID:      d.ID,
		Name:    d.Name,
		LeftPct: d.Position.X / domain.MapWidth * 100,
		TopPct:  d.Position.Y / domain.MapHeight * 100,
		Color:   status.Color(),
		Status:  status,
		Title:   d.Name,
		Detail: fmt.Sprintf("Water: %sm | Personnel: %d",
			strconv.FormatFloat(d.WaterLevel, 'f', -1, 64), d.Personnel.Total()),
	}
}

// Legend - уровни воды от высокого к нулевому
func (uc *MapUseCase) Legend() []dto.LegendEntry {
	return []dto.LegendEntry{
		legendEntry(domain.WaterStatusHigh, fmt.Sprintf("> %gm", domain.HighWaterThreshold)),
		legendEntry(domain.WaterStatusMedium, fmt.Sprintf("> %gm", domain.MediumWaterThreshold)),
		legendEntry(domain.WaterStatusLow, fmt.Sprintf("> %gm", domain.LowWaterThreshold)),
		legendEntry(domain.WaterStatusNone, fmt.Sprintf("%gm", domain.LowWaterThreshold)),
	}
}

func legendEntry(s domain.WaterStatus, description string) dto.LegendEntry {
	return dto.LegendEntry{
		Status:      s,
		Label:       s.Label(),
		Color:       s.Color(),
		Description: description,
	}
}
