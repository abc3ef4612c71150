package sixtycycle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/ganzhi/internal/culture"
	"github.com/zapponejosh/ganzhi/internal/cycle"
)

func mustCycle(t *testing.T, name string) SixtyCycle {
	t.Helper()
	s, err := SixtyCycleFromName(name)
	if err != nil {
		t.Fatalf("SixtyCycleFromName(%q) failed: %v", name, err)
	}
	return s
}

func TestSixtyCycle_JiaZi(t *testing.T) {
	s := SixtyCycleFromIndex(0)

	if s.Name() != "甲子" {
		t.Errorf("Name() = %q, want %q", s.Name(), "甲子")
	}
	if got := s.HeavenStem().Name(); got != "甲" {
		t.Errorf("HeavenStem() = %q, want %q", got, "甲")
	}
	if got := s.EarthBranch().Name(); got != "子" {
		t.Errorf("EarthBranch() = %q, want %q", got, "子")
	}
	if got := s.Ten().Index(); got != 0 {
		t.Errorf("Ten().Index() = %d, want 0", got)
	}
	if got := s.Sound().Name(); got != "海中金" {
		t.Errorf("Sound() = %q, want %q", got, "海中金")
	}
}

func TestSixtyCycle_StemBranchConsistency(t *testing.T) {
	for i := 0; i < 60; i++ {
		s := SixtyCycleFromIndex(i)
		stem, branch := s.HeavenStem(), s.EarthBranch()
		if stem.Index() != i%10 {
			t.Errorf("SixtyCycle(%d).HeavenStem().Index() = %d, want %d", i, stem.Index(), i%10)
		}
		if branch.Index() != i%12 {
			t.Errorf("SixtyCycle(%d).EarthBranch().Index() = %d, want %d", i, branch.Index(), i%12)
		}
		if want := stem.Name() + branch.Name(); s.Name() != want {
			t.Errorf("SixtyCycle(%d).Name() = %q, want %q", i, s.Name(), want)
		}
	}
}

func TestSixtyCycle_RoundTrip(t *testing.T) {
	for _, s := range All() {
		got, err := SixtyCycleFromName(s.Name())
		if err != nil {
			t.Fatalf("SixtyCycleFromName(%q) failed: %v", s.Name(), err)
		}
		if got != s {
			t.Errorf("SixtyCycleFromName(%q) = %v, want %v", s.Name(), got, s)
		}
	}
}

func TestSixtyCycle_FromNameInvalid(t *testing.T) {
	// 甲丑 pairs a yang stem with a yin branch and is not a member of the cycle.
	for _, name := range []string{"甲丑", "乙子", "甲", "子", "", "癸亥 "} {
		if _, err := SixtyCycleFromName(name); !errors.Is(err, cycle.ErrInvalidName) {
			t.Errorf("SixtyCycleFromName(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestSixtyCycle_ClosureAndComposition(t *testing.T) {
	for k := -120; k <= 120; k++ {
		if SixtyCycleFromIndex(k) != SixtyCycleFromIndex(k+60) {
			t.Errorf("SixtyCycleFromIndex(%d) != SixtyCycleFromIndex(%d)", k, k+60)
		}
	}

	s := mustCycle(t, "丙午")
	for a := -70; a <= 70; a += 7 {
		for b := -61; b <= 61; b += 11 {
			if s.Next(a).Next(b) != s.Next(a+b) {
				t.Errorf("丙午.Next(%d).Next(%d) != Next(%d)", a, b, a+b)
			}
		}
	}

	if got := mustCycle(t, "癸亥").Next(1).Name(); got != "甲子" {
		t.Errorf("癸亥.Next(1) = %q, want 甲子", got)
	}
	if got := SixtyCycleFromIndex(-1).Name(); got != "癸亥" {
		t.Errorf("SixtyCycleFromIndex(-1) = %q, want 癸亥", got)
	}
}

func TestSixtyCycle_Ten(t *testing.T) {
	tests := []struct {
		cycle string
		want  string
	}{
		{"甲子", "甲子"},
		{"癸酉", "甲子"},
		{"甲戌", "甲戌"},
		{"乙亥", "甲戌"},
		{"癸未", "甲戌"},
		{"甲申", "甲申"},
		{"甲午", "甲午"},
		{"甲辰", "甲辰"},
		{"甲寅", "甲寅"},
		{"癸亥", "甲寅"},
	}

	for _, tt := range tests {
		if got := mustCycle(t, tt.cycle).Ten().Name(); got != tt.want {
			t.Errorf("%s.Ten() = %q, want %q", tt.cycle, got, tt.want)
		}
	}
}

func TestSixtyCycle_TenGroups(t *testing.T) {
	// Every xun holds ten consecutive pillars starting at a 甲 stem.
	for i, s := range All() {
		want := culture.TenFromIndex(i / 10)
		if got := s.Ten(); got != want {
			t.Errorf("%s.Ten() = %v, want %v", s, got, want)
		}
	}
}

func TestSixtyCycle_ExtraEarthBranches(t *testing.T) {
	tests := []struct {
		cycle string
		want  []string
	}{
		{"甲子", []string{"戌", "亥"}},
		{"甲戌", []string{"申", "酉"}},
		{"甲申", []string{"午", "未"}},
		{"甲午", []string{"辰", "巳"}},
		{"甲辰", []string{"寅", "卯"}},
		{"甲寅", []string{"子", "丑"}},
		{"癸亥", []string{"子", "丑"}},
		{"丁卯", []string{"戌", "亥"}},
	}

	for _, tt := range tests {
		var got []string
		for _, b := range mustCycle(t, tt.cycle).ExtraEarthBranches() {
			got = append(got, b.Name())
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s.ExtraEarthBranches() mismatch (-want +got):\n%s", tt.cycle, diff)
		}
	}
}

func TestSixtyCycle_VoidBranchPairing(t *testing.T) {
	for _, s := range All() {
		extra := s.ExtraEarthBranches()

		if extra[1] != extra[0].Next(1) {
			t.Errorf("%s: void branches %v are not adjacent", s, extra)
		}

		// Walk back to the 甲 that opens the xun and collect its ten branches.
		start := s.Next(-s.HeavenStem().Index())
		paired := make(map[EarthBranch]bool, 10)
		for i := 0; i < 10; i++ {
			paired[start.Next(i).EarthBranch()] = true
		}
		if len(paired) != 10 {
			t.Fatalf("%s: xun has %d distinct branches, want 10", s, len(paired))
		}
		for _, b := range extra {
			if paired[b] {
				t.Errorf("%s: void branch %s is paired within the xun", s, b)
			}
		}
	}
}

func TestSixtyCycle_Sound(t *testing.T) {
	tests := []struct {
		cycle string
		want  string
	}{
		{"甲子", "海中金"},
		{"乙丑", "海中金"},
		{"丙寅", "炉中火"},
		{"壬申", "剑锋金"},
		{"甲午", "沙中金"},
		{"壬戌", "大海水"},
		{"癸亥", "大海水"},
	}

	for _, tt := range tests {
		if got := mustCycle(t, tt.cycle).Sound().Name(); got != tt.want {
			t.Errorf("%s.Sound() = %q, want %q", tt.cycle, got, tt.want)
		}
	}
}

func TestSixtyCycle_PengZu(t *testing.T) {
	got := mustCycle(t, "乙丑").PengZu().Name()
	want := "乙不栽植千株不长 丑不冠带主不还乡"
	if got != want {
		t.Errorf("乙丑.PengZu() = %q, want %q", got, want)
	}
}

func TestAll(t *testing.T) {
	cycles := All()
	if len(cycles) != 60 {
		t.Fatalf("len(All()) = %d, want 60", len(cycles))
	}
	for i, s := range cycles {
		if s.Index() != i {
			t.Errorf("All()[%d].Index() = %d", i, s.Index())
		}
	}

	// The returned slice is a copy.
	cycles[0] = cycles[1]
	if All()[0].Name() != "甲子" {
		t.Error("mutating All() result changed the shared table")
	}
}

func TestHideHeavenStemDay(t *testing.T) {
	hide := NewHideHeavenStem(HeavenStemFromIndex(0), culture.Main)
	day := NewHideHeavenStemDay(hide, 2)

	if day.Name() != "甲木" {
		t.Errorf("Name() = %q, want %q", day.Name(), "甲木")
	}
	if day.String() != "甲木第3天" {
		t.Errorf("String() = %q, want %q", day.String(), "甲木第3天")
	}
	if day.DayIndex() != 2 {
		t.Errorf("DayIndex() = %d, want 2", day.DayIndex())
	}
	if day.HideHeavenStem() != hide {
		t.Errorf("HideHeavenStem() = %v, want %v", day.HideHeavenStem(), hide)
	}
	if hide.Type() != culture.Main || hide.Name() != "甲" {
		t.Errorf("hide = %s/%v, want 甲/本气", hide.Name(), hide.Type())
	}
}
