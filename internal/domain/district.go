package domain

// PersonnelCount - количество спасателей по категориям
type PersonnelCount struct {
	SRR    int `json:"srr" db:"srr"`
	Health int `json:"health" db:"health"`
	Log    int `json:"log" db:"log"`
}

// Total - srr + health + log
func (p PersonnelCount) Total() int {
	return p.SRR + p.Health + p.Log
}

// Add - поэлементная сумма двух счётчиков
func (p PersonnelCount) Add(o PersonnelCount) PersonnelCount {
	return PersonnelCount{
		SRR:    p.SRR + o.SRR,
		Health: p.Health + o.Health,
		Log:    p.Log + o.Log,
	}
}

// Position - фиксированное место маркера в координатах изображения карты
type Position struct {
	X float64 `json:"x" db:"pos_x"`
	Y float64 `json:"y" db:"pos_y"`
}

// District - строка реестра. ID, Name и Position не меняются после заполнения
type District struct {
	ID         string         `json:"id" db:"id"`
	Name       string         `json:"name" db:"name"`
	WaterLevel float64        `json:"waterLevel" db:"water_level"`
	Personnel  PersonnelCount `json:"personnel"`
	Position   Position       `json:"coordinates"`
}

// Status - классификация уровня воды района
func (d District) Status() WaterStatus {
	return ClassifyWaterLevel(d.WaterLevel)
}

// Payload - район без позиции, для сервиса симуляции
func (d District) Payload() DistrictPayload {
	return DistrictPayload{
		ID:         d.ID,
		Name:       d.Name,
		WaterLevel: d.WaterLevel,
		Personnel:  d.Personnel,
	}
}

// DistrictPayload - район в том виде, в каком уходит в сервис симуляции
type DistrictPayload struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	WaterLevel float64        `json:"waterLevel"`
	Personnel  PersonnelCount `json:"personnel"`
}

// DistrictPatch - частичное обновление, nil поля не трогаются
type DistrictPatch struct {
	WaterLevel *float64        `json:"waterLevel,omitempty"`
	Personnel  *PersonnelCount `json:"personnel,omitempty"`
}

// Apply - применение патча к d
func (p DistrictPatch) Apply(d District) District {
	if p.WaterLevel != nil {
		d.WaterLevel = *p.WaterLevel
	}
	if p.Personnel != nil {
		d.Personnel = *p.Personnel
	}
	return d
}

// IsEmpty - патч ничего не меняет
func (p DistrictPatch) IsEmpty() bool {
	return p.WaterLevel == nil && p.Personnel == nil
}
