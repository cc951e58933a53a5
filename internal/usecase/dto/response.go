package dto

import (
	"time"

	"github.com/emergency-response-dashboard/internal/domain"
)

// DistrictResponse - район с вычисленным статусом
type DistrictResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	WaterLevel     float64               `json:"waterLevel"`
	Personnel      domain.PersonnelCount `json:"personnel"`
	Coordinates    domain.Position       `json:"coordinates"`
	Status         domain.WaterStatus    `json:"status"`
	TotalPersonnel int                   `json:"totalPersonnel"`
}

// ConvertDistrict - преобразование доменного района для API
func ConvertDistrict(d domain.District) DistrictResponse {
	return DistrictResponse{
		ID:             d.ID,
		Name:           d.Name,
		WaterLevel:     d.WaterLevel,
		Personnel:      d.Personnel,
		Coordinates:    d.Position,
		Status:         d.Status(),
		TotalPersonnel: d.Personnel.Total(),
	}
}

// ConvertDistricts - преобразование списка с сохранением порядка
func ConvertDistricts(districts []domain.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, ConvertDistrict(d))
	}
	return out
}

// MarkerResponse - маркер района на карте
type MarkerResponse struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	LeftPct float64            `json:"leftPct"`
	TopPct  float64            `json:"topPct"`
	Color   string             `json:"color"`
	Status  domain.WaterStatus `json:"status"`
	Title   string             `json:"title"`
	Detail  string             `json:"detail"`
}

// LegendEntry - строка легенды карты
type LegendEntry struct {
	Status      domain.WaterStatus `json:"status"`
	Label       string             `json:"label"`
	Color       string             `json:"color"`
	Description string             `json:"description"`
}

// DistrictStatusRow - строка таблицы статусов в сводке
type DistrictStatusRow struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	WaterLevel     float64            `json:"waterLevel"`
	Status         domain.WaterStatus `json:"status"`
	Label          string             `json:"label"`
	TotalPersonnel int                `json:"totalPersonnel"`
}

// SummaryResponse - агрегированная сводка по всем районам
type SummaryResponse struct {
	DistrictCount  int                 `json:"districtCount"`
	TotalPersonnel int                 `json:"totalPersonnel"`
	TotalSRR       int                 `json:"totalSRR"`
	TotalHealth    int                 `json:"totalHealth"`
	TotalLog       int                 `json:"totalLog"`
	AvgWaterLevel  float64             `json:"avgWaterLevel"`
	HighWaterCount int                 `json:"highWaterCount"`
	Districts      []DistrictStatusRow `json:"districts"`
}

// EditFormResponse - состояние диалога редактирования
type EditFormResponse struct {
	District DistrictResponse `json:"district"`
	Form     EditFormRequest  `json:"form"`
}

// SubmissionState - состояние контроллера отправки
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSuccess    SubmissionState = "success"
	SubmissionFailed     SubmissionState = "failed"
)

// SubmissionResponse - снимок состояния контроллера отправки
type SubmissionResponse struct {
	ID         string                   `json:"id,omitempty"`
	State      SubmissionState          `json:"state"`
	Result     *domain.SimulationResult `json:"result,omitempty"`
	Best       string                   `json:"best,omitempty"`
	Error      string                   `json:"error,omitempty"`
	StartedAt  *time.Time               `json:"startedAt,omitempty"`
	FinishedAt *time.Time               `json:"finishedAt,omitempty"`
}

// ServiceStatusResponse - доступность внешнего сервиса симуляции
type ServiceStatusResponse struct {
	Mode      string                 `json:"mode"`
	BaseURL   string                 `json:"baseUrl,omitempty"`
	Reachable bool                   `json:"reachable"`
	Status    map[string]interface{} `json:"status,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}
