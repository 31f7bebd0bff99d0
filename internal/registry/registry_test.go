package registry

import (
	"context"
	"testing"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

type fakeProgram struct {
	key string
}

func (p *fakeProgram) GetProgramKey() string { return p.key }
func (p *fakeProgram) GetDisplayName() string { return "Fake " + p.key }
func (p *fakeProgram) GetPeriodBounds(time.Time) models.PeriodPair {
	return models.PeriodPair{}
}
func (p *fakeProgram) GetPrizeTable() []int   { return nil }
func (p *fakeProgram) DropsNonPositive() bool { return false }
func (p *fakeProgram) FetchWagers(context.Context, models.TimeWindow) ([]models.WagerRecord, error) {
	return nil, nil
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewProgramRegistry()

	if err := reg.Register(&fakeProgram{key: "rainbet"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(&fakeProgram{key: "raw365"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if reg.Count() != 2 {
		t.Errorf("count = %d, want 2", reg.Count())
	}

	program, ok := reg.Get("rainbet")
	if !ok || program.GetProgramKey() != "rainbet" {
		t.Errorf("Get(rainbet) = %v, %v", program, ok)
	}

	if _, ok := reg.Get("unknown"); ok {
		t.Error("Get(unknown) should report missing")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewProgramRegistry()

	if err := reg.Register(&fakeProgram{key: "rainbet"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(&fakeProgram{key: "rainbet"}); err == nil {
		t.Error("duplicate register should fail")
	}
}
