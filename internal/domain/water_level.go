package domain

// WaterStatus - уровень подтопления района
type WaterStatus string

const (
	WaterStatusHigh   WaterStatus = "High"
	WaterStatusMedium WaterStatus = "Medium"
	WaterStatusLow    WaterStatus = "Low"
	WaterStatusNone   WaterStatus = "None"
)

// Пороги в метрах. Уровень попадает в диапазон только строго выше порога
const (
	HighWaterThreshold   = 2.0
	MediumWaterThreshold = 1.0
	LowWaterThreshold    = 0.0
)

// ClassifyWaterLevel - диапазон по уровню, побеждает первое совпадение
func ClassifyWaterLevel(level float64) WaterStatus {
	switch {
	case level > HighWaterThreshold:
		return WaterStatusHigh
	case level > MediumWaterThreshold:
		return WaterStatusMedium
	case level > LowWaterThreshold:
		return WaterStatusLow
	default:
		return WaterStatusNone
	}
}

// Color - цвет маркера на карте
func (s WaterStatus) Color() string {
	switch s {
	case WaterStatusHigh:
		return "red"
	case WaterStatusMedium:
		return "amber"
	case WaterStatusLow:
		return "blue"
	default:
		return "gray"
	}
}

// Label - текст бейджа
func (s WaterStatus) Label() string {
	if s == WaterStatusNone {
		return "No Water"
	}
	return string(s) + " Water"
}
