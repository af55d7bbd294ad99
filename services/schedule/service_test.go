package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cuidarmais/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type fakeScheduleAPI struct {
	mu        sync.Mutex
	configs   []models.ScheduleConfig
	slots     map[string][]models.AvailableSlot
	listCalls int
	deleted   []int64
	check     models.DeletionCheck
}

func (f *fakeScheduleAPI) ScheduleConfigs(ctx context.Context, token string, psicologoID int64) ([]models.ScheduleConfig, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	return f.configs, nil
}

func (f *fakeScheduleAPI) CreateScheduleConfig(ctx context.Context, token string, cfg models.ScheduleConfig) error {
	f.configs = append(f.configs, cfg)
	return nil
}

func (f *fakeScheduleAPI) UpdateScheduleConfig(ctx context.Context, token string, id int64, cfg models.ScheduleConfig) error {
	return nil
}

func (f *fakeScheduleAPI) DeleteScheduleConfig(ctx context.Context, token string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeScheduleAPI) InitializeScheduleConfigs(ctx context.Context, token string) error {
	return nil
}

func (f *fakeScheduleAPI) CanDeleteScheduleConfig(ctx context.Context, token string, id int64) (*models.DeletionCheck, error) {
	return &f.check, nil
}

func (f *fakeScheduleAPI) SlotsByWeekday(ctx context.Context, token string, psicologoID int64, diaSemana string) ([]models.AvailableSlot, error) {
	return f.slots[diaSemana], nil
}

func newTestService(t *testing.T, api *fakeScheduleAPI) *DefaultService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultService{API: api, Cache: client, Logger: zap.NewNop()}
}

func TestConfigForWeekdayServedFromCache(t *testing.T) {
	api := &fakeScheduleAPI{
		configs: []models.ScheduleConfig{
			{ID: 1, PsicologoID: 7, DiaSemana: "MONDAY", HorarioInicio: "08:00", HorarioFim: "18:00", IntervaloMinutos: 50, Ativo: true},
			{ID: 2, PsicologoID: 7, DiaSemana: "TUESDAY", HorarioInicio: "09:00", HorarioFim: "17:00", IntervaloMinutos: 50, Ativo: true},
		},
	}
	svc := newTestService(t, api)
	ctx := context.Background()

	first, err := svc.ConfigForWeekday(ctx, "tok", 7, "MONDAY")
	if err != nil {
		t.Fatalf("ConfigForWeekday: %v", err)
	}
	if first == nil || first.ID != 1 {
		t.Fatalf("got %+v, want config 1", first)
	}

	second, err := svc.ConfigForWeekday(ctx, "tok", 7, "MONDAY")
	if err != nil {
		t.Fatalf("ConfigForWeekday (cached): %v", err)
	}
	if second == nil || second.ID != 1 {
		t.Fatalf("cached read got %+v, want config 1", second)
	}
	if api.listCalls != 1 {
		t.Fatalf("API calls = %d, want 1 (second read from cache)", api.listCalls)
	}
}

func TestSaveInvalidatesWeekdayCache(t *testing.T) {
	api := &fakeScheduleAPI{
		configs: []models.ScheduleConfig{
			{ID: 1, PsicologoID: 7, DiaSemana: "MONDAY", HorarioInicio: "08:00", HorarioFim: "18:00", IntervaloMinutos: 50, Ativo: true},
		},
	}
	svc := newTestService(t, api)
	ctx := context.Background()

	if _, err := svc.ConfigForWeekday(ctx, "tok", 7, "MONDAY"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if err := svc.Save(ctx, "tok", models.ScheduleConfig{ID: 1, PsicologoID: 7, DiaSemana: "MONDAY", HorarioInicio: "10:00", HorarioFim: "16:00", IntervaloMinutos: 50, Ativo: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := svc.ConfigForWeekday(ctx, "tok", 7, "MONDAY"); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("API calls = %d, want 2 (cache dropped on save)", api.listCalls)
	}
}

func TestActiveWeekdaysSkipsInactive(t *testing.T) {
	api := &fakeScheduleAPI{
		configs: []models.ScheduleConfig{
			{ID: 1, DiaSemana: "MONDAY", Ativo: true},
			{ID: 2, DiaSemana: "TUESDAY", Ativo: false},
			{ID: 3, DiaSemana: "SATURDAY", Ativo: true},
		},
	}
	svc := newTestService(t, api)

	opts, err := svc.ActiveWeekdays(context.Background(), "tok", 7)
	if err != nil {
		t.Fatalf("ActiveWeekdays: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	if opts[0].Valor != "MONDAY" || opts[0].Nome != "Segunda-feira" {
		t.Fatalf("opts[0] = %+v", opts[0])
	}
	if opts[1].Valor != "SATURDAY" || opts[1].Nome != "Sábado" {
		t.Fatalf("opts[1] = %+v", opts[1])
	}
}

func TestSlotOptionsFormatting(t *testing.T) {
	api := &fakeScheduleAPI{
		slots: map[string][]models.AvailableSlot{
			"MONDAY": {
				{ID: 1, HoraInicio: "08:00:00", HoraFim: "08:50:00"},
				{ID: 2, HoraInicio: "09:00:00", HoraFim: "09:50:00"},
			},
		},
	}
	svc := newTestService(t, api)

	opts, err := svc.SlotOptions(context.Background(), "tok", 7, "MONDAY")
	if err != nil {
		t.Fatalf("SlotOptions: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	if opts[0].Label != "08:00 - 08:50" {
		t.Fatalf("label = %q", opts[0].Label)
	}
}

func TestMergeCurrentSlot(t *testing.T) {
	opts := []SlotOption{{ID: 1, Label: "08:00 - 08:50"}}

	merged := MergeCurrentSlot(opts, &models.AvailableSlot{ID: 9, HoraInicio: "14:00:00", HoraFim: "14:50:00"})
	if len(merged) != 2 || merged[1].ID != 9 || merged[1].Label != "14:00 - 14:50" {
		t.Fatalf("merged = %+v", merged)
	}

	same := MergeCurrentSlot(opts, &models.AvailableSlot{ID: 1})
	if len(same) != 1 {
		t.Fatalf("duplicate slot must not be appended, got %+v", same)
	}
	if got := MergeCurrentSlot(opts, nil); len(got) != 1 {
		t.Fatalf("nil slot must be a no-op, got %+v", got)
	}
}

func TestDeleteGuardedByInUseCheck(t *testing.T) {
	api := &fakeScheduleAPI{check: models.DeletionCheck{PodeExcluir: false, Motivo: "pacientes vinculados"}}
	svc := newTestService(t, api)

	err := svc.Delete(context.Background(), "tok", 7, 1)
	if !errors.Is(err, ErrConfigInUse) {
		t.Fatalf("err = %v, want ErrConfigInUse", err)
	}
	if len(api.deleted) != 0 {
		t.Fatal("delete must not reach the API when the check fails")
	}

	api.check = models.DeletionCheck{PodeExcluir: true}
	if err := svc.Delete(context.Background(), "tok", 7, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 1 {
		t.Fatalf("deleted = %v, want [1]", api.deleted)
	}
}
