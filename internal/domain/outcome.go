package domain

import (
	"encoding/json"
	"fmt"
)

// Имена алгоритмов сервиса симуляции
const (
	AlgorithmPSO = "pso"
	AlgorithmFA  = "fa"
)

// AlgorithmRun - один прогон оптимизатора: распределение по имени района (nil,
// если сервис район пропустил), fitness и время в секундах.
// В JSON это массив из трёх элементов.
type AlgorithmRun struct {
	Allocation     map[string]*PersonnelCount
	Fitness        float64
	ElapsedSeconds float64
}

func (r *AlgorithmRun) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("algorithm run: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("algorithm run: expected 3 elements, got %d", len(parts))
	}

	var run AlgorithmRun
	if err := json.Unmarshal(parts[0], &run.Allocation); err != nil {
		return fmt.Errorf("algorithm run allocation: %w", err)
	}
	if err := json.Unmarshal(parts[1], &run.Fitness); err != nil {
		return fmt.Errorf("algorithm run fitness: %w", err)
	}
	if err := json.Unmarshal(parts[2], &run.ElapsedSeconds); err != nil {
		return fmt.Errorf("algorithm run time: %w", err)
	}
	if run.Allocation == nil {
		run.Allocation = map[string]*PersonnelCount{}
	}

	*r = run
	return nil
}

func (r AlgorithmRun) MarshalJSON() ([]byte, error) {
	allocation := r.Allocation
	if allocation == nil {
		allocation = map[string]*PersonnelCount{}
	}
	return json.Marshal([]interface{}{allocation, r.Fitness, r.ElapsedSeconds})
}

// TotalAllocated - сумма распределённого персонала по всем районам
func (r AlgorithmRun) TotalAllocated() PersonnelCount {
	var total PersonnelCount
	for _, p := range r.Allocation {
		if p != nil {
			total = total.Add(*p)
		}
	}
	return total
}

// SimulationOutcome - результаты обоих алгоритмов
type SimulationOutcome struct {
	PSO AlgorithmRun `json:"pso"`
	FA  AlgorithmRun `json:"fa"`
}

// Best - алгоритм с меньшим fitness, при равенстве PSO
func (o SimulationOutcome) Best() string {
	if o.FA.Fitness < o.PSO.Fitness {
		return AlgorithmFA
	}
	return AlgorithmPSO
}

// SimulationResult - ответ симулятора. HTTP сервис возвращает Outcome,
// mock и legacy backend только Message.
type SimulationResult struct {
	Outcome *SimulationOutcome `json:"outcome,omitempty"`
	Message string             `json:"message,omitempty"`
}
