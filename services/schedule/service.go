// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cuidarmais/models"
	"cuidarmais/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	configCachePrefix = "configagenda:"
	configCacheTTL    = 5 * time.Minute
)

// ErrConfigInUse is returned when a configuration cannot be deleted because
// patients occupy its slots.
var ErrConfigInUse = errors.New("configuração possui pacientes vinculados aos horários")

// API is the slice of the remote client the schedule service needs.
type API interface {
	ScheduleConfigs(ctx context.Context, token string, psicologoID int64) ([]models.ScheduleConfig, error)
	CreateScheduleConfig(ctx context.Context, token string, cfg models.ScheduleConfig) error
	UpdateScheduleConfig(ctx context.Context, token string, id int64, cfg models.ScheduleConfig) error
	DeleteScheduleConfig(ctx context.Context, token string, id int64) error
	InitializeScheduleConfigs(ctx context.Context, token string) error
	CanDeleteScheduleConfig(ctx context.Context, token string, id int64) (*models.DeletionCheck, error)
	SlotsByWeekday(ctx context.Context, token string, psicologoID int64, diaSemana string) ([]models.AvailableSlot, error)
}

// Service manages the weekly schedule configuration and the slot options the
// patient form offers.
type Service interface {
	Configs(ctx context.Context, token string, psicologoID int64) ([]models.ScheduleConfig, error)
	ConfigForWeekday(ctx context.Context, token string, psicologoID int64, diaSemana string) (*models.ScheduleConfig, error)
	ActiveWeekdays(ctx context.Context, token string, psicologoID int64) ([]models.WeekdayOption, error)
	SlotOptions(ctx context.Context, token string, psicologoID int64, diaSemana string) ([]SlotOption, error)
	Save(ctx context.Context, token string, cfg models.ScheduleConfig) error
	Delete(ctx context.Context, token string, psicologoID, id int64) error
	Initialize(ctx context.Context, token string, psicologoID int64) error
}

// SlotOption is one entry of the weekly-slot select.
type SlotOption struct {
	ID    int64
	Label string
}

// DefaultService is the production implementation. Configurations are cached
// per weekday after the first fetch and dropped on any write.
type DefaultService struct {
	API    API
	Cache  *redis.Client
	Logger *zap.Logger
}

func weekdayKey(psicologoID int64, diaSemana string) string {
	return fmt.Sprintf("%s%d:%s", configCachePrefix, psicologoID, diaSemana)
}

// Configs lists the practitioner's weekday configurations, populating the
// per-weekday cache as a side effect.
func (s *DefaultService) Configs(ctx context.Context, token string, psicologoID int64) ([]models.ScheduleConfig, error) {
	configs, err := s.API.ScheduleConfigs(ctx, token, psicologoID)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configurações: %w", err)
	}
	for _, cfg := range configs {
		if data, err := json.Marshal(cfg); err == nil {
			if err := s.Cache.Set(ctx, weekdayKey(psicologoID, cfg.DiaSemana), data, configCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache schedule config", zap.Error(err))
			}
		}
	}
	return configs, nil
}

// ConfigForWeekday returns one weekday's configuration, served from cache
// when warm. Returns nil when the weekday has no configuration.
func (s *DefaultService) ConfigForWeekday(ctx context.Context, token string, psicologoID int64, diaSemana string) (*models.ScheduleConfig, error) {
	if data, err := s.Cache.Get(ctx, weekdayKey(psicologoID, diaSemana)).Result(); err == nil {
		var cfg models.ScheduleConfig
		if err := json.Unmarshal([]byte(data), &cfg); err == nil {
			return &cfg, nil
		}
	}
	configs, err := s.Configs(ctx, token, psicologoID)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		if configs[i].DiaSemana == diaSemana {
			return &configs[i], nil
		}
	}
	return nil, nil
}

// ActiveWeekdays maps the active configurations onto select options for the
// patient form.
func (s *DefaultService) ActiveWeekdays(ctx context.Context, token string, psicologoID int64) ([]models.WeekdayOption, error) {
	configs, err := s.Configs(ctx, token, psicologoID)
	if err != nil {
		return nil, err
	}
	opts := make([]models.WeekdayOption, 0, len(configs))
	for _, cfg := range configs {
		if !cfg.Ativo {
			continue
		}
		opts = append(opts, models.WeekdayOption{
			Valor: cfg.DiaSemana,
			Nome:  utils.WeekdayNamePT(cfg.DiaSemana),
		})
	}
	return opts, nil
}

// SlotOptions lists the weekday's slots formatted for the slot select.
func (s *DefaultService) SlotOptions(ctx context.Context, token string, psicologoID int64, diaSemana string) ([]SlotOption, error) {
	slots, err := s.API.SlotsByWeekday(ctx, token, psicologoID, diaSemana)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar horários: %w", err)
	}
	opts := make([]SlotOption, 0, len(slots))
	for _, h := range slots {
		opts = append(opts, SlotOption{
			ID:    h.ID,
			Label: utils.FormatTimeHM(h.HoraInicio) + " - " + utils.FormatTimeHM(h.HoraFim),
		})
	}
	return opts, nil
}

// MergeCurrentSlot ensures the slot a patient already occupies appears among
// the options, so editing keeps the current choice selectable.
func MergeCurrentSlot(opts []SlotOption, current *models.AvailableSlot) []SlotOption {
	if current == nil || current.ID == 0 {
		return opts
	}
	for _, o := range opts {
		if o.ID == current.ID {
			return opts
		}
	}
	return append(opts, SlotOption{
		ID:    current.ID,
		Label: utils.FormatTimeHM(current.HoraInicio) + " - " + utils.FormatTimeHM(current.HoraFim),
	})
}

// Save creates or updates a weekday configuration and drops its cache entry.
func (s *DefaultService) Save(ctx context.Context, token string, cfg models.ScheduleConfig) error {
	var err error
	if cfg.ID == 0 {
		err = s.API.CreateScheduleConfig(ctx, token, cfg)
	} else {
		err = s.API.UpdateScheduleConfig(ctx, token, cfg.ID, cfg)
	}
	if err != nil {
		return fmt.Errorf("falha ao salvar configuração: %w", err)
	}
	s.invalidate(ctx, cfg.PsicologoID, cfg.DiaSemana)
	return nil
}

// Delete removes a configuration after checking deletion eligibility.
func (s *DefaultService) Delete(ctx context.Context, token string, psicologoID, id int64) error {
	check, err := s.API.CanDeleteScheduleConfig(ctx, token, id)
	if err != nil {
		return fmt.Errorf("falha ao verificar configuração: %w", err)
	}
	if !check.PodeExcluir {
		return ErrConfigInUse
	}
	if err := s.API.DeleteScheduleConfig(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao resetar configuração: %w", err)
	}
	s.invalidateAll(ctx, psicologoID)
	return nil
}

// Initialize seeds the default weekday configurations.
func (s *DefaultService) Initialize(ctx context.Context, token string, psicologoID int64) error {
	if err := s.API.InitializeScheduleConfigs(ctx, token); err != nil {
		return fmt.Errorf("falha ao inicializar configurações: %w", err)
	}
	s.invalidateAll(ctx, psicologoID)
	return nil
}

func (s *DefaultService) invalidate(ctx context.Context, psicologoID int64, diaSemana string) {
	if err := s.Cache.Del(ctx, weekdayKey(psicologoID, diaSemana)).Err(); err != nil {
		s.Logger.Warn("failed to invalidate schedule cache", zap.Error(err))
	}
}

func (s *DefaultService) invalidateAll(ctx context.Context, psicologoID int64) {
	weekdays := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	keys := make([]string, 0, len(weekdays))
	for _, dia := range weekdays {
		keys = append(keys, weekdayKey(psicologoID, dia))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		s.Logger.Warn("failed to invalidate schedule cache", zap.Error(err))
	}
}
