package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^([+-]?)(0[xX][0-9a-fA-F]+|\d+)`)
)

// ParseWaterLevel - разбор числового префикса ("2.5m" -> 2.5).
// Нечисловой ввод даёт 0.
func ParseWaterLevel(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	// -0 и переполнение тоже дают 0
	if err != nil || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount - разбор целого префикса ("12.7" -> 12, "0x10" -> 16).
// Нечисловой ввод даёт 0, отрицательные значения пропускаются.
func ParseCount(s string) int {
	m := intPrefix.FindStringSubmatch(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == nil {
		return 0
	}
	sign, digits := m[1], m[2]

	base := 10
	if len(digits) > 2 && (digits[1] == 'x' || digits[1] == 'X') {
		base, digits = 16, digits[2:]
	}

	v, err := strconv.ParseInt(sign+digits, base, strconv.IntSize)
	if err != nil {
		return 0
	}
	return int(v)
}

// NewEditForm - поля диалога из текущих значений района
func NewEditForm(d domain.District) dto.EditFormRequest {
	return dto.EditFormRequest{
		WaterLevel: strconv.FormatFloat(d.WaterLevel, 'f', -1, 64),
		SRR:        strconv.Itoa(d.Personnel.SRR),
		Health:     strconv.Itoa(d.Personnel.Health),
		Log:        strconv.Itoa(d.Personnel.Log),
	}
}

// FormPatch - патч из полей формы, всегда задаёт оба поля
func FormPatch(form dto.EditFormRequest) domain.DistrictPatch {
	level := ParseWaterLevel(form.WaterLevel)
	personnel := domain.PersonnelCount{
		SRR:    ParseCount(form.SRR),
		Health: ParseCount(form.Health),
		Log:    ParseCount(form.Log),
	}
	return domain.DistrictPatch{
		WaterLevel: &level,
		Personnel:  &personnel,
	}
}

// EditSession - выбранный район и открытый диалог редактирования
type EditSession struct {
	mu       sync.Mutex
	store    *DistrictStore
	selected string
	logger   *zap.Logger
}

// NewEditSession - создание сессии редактирования
func NewEditSession(store *DistrictStore, logger *zap.Logger) *EditSession {
	return &EditSession{
		store:  store,
		logger: logger,
	}
}

// Select - открыть диалог для района, предыдущий выбор заменяется
func (s *EditSession) Select(id string) (*dto.EditFormResponse, error) {
	d, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()

	s.logger.Debug("District selected", zap.String("id", id))
	return editFormResponse(d), nil
}

// Current - открытый диалог или ErrNoSelection
func (s *EditSession) Current() (*dto.EditFormResponse, error) {
	s.mu.Lock()
	id := s.selected
	s.mu.Unlock()

	if id == "" {
		return nil, errors.ErrNoSelection
	}

	d, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return editFormResponse(d), nil
}

// Cancel - закрыть диалог без изменений
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = ""
}

// Commit - применить форму к выбранному району и закрыть диалог
func (s *EditSession) Commit(form dto.EditFormRequest) (domain.District, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return domain.District{}, errors.ErrNoSelection
	}

	id := s.selected
	if err := s.store.Update(id, FormPatch(form)); err != nil {
		return domain.District{}, err
	}
	s.selected = ""

	d, err := s.store.Get(id)
	if err != nil {
		return domain.District{}, err
	}

	s.logger.Info("District edit committed",
		zap.String("id", id),
		zap.Float64("water_level", d.WaterLevel),
		zap.Int("personnel", d.Personnel.Total()))

	return d, nil
}

func editFormResponse(d domain.District) *dto.EditFormResponse {
	return &dto.EditFormResponse{
		District: dto.ConvertDistrict(d),
		Form:     NewEditForm(d),
	}
}
