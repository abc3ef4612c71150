package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/culture"
	"github.com/zapponejosh/ganzhi/internal/logger"
	"github.com/zapponejosh/ganzhi/internal/render"
	"github.com/zapponejosh/ganzhi/internal/sixtycycle"
)

// checkResult holds the outcome of one invariant check.
type checkResult struct {
	Name         string `json:"name" yaml:"name"`
	Cases        int    `json:"cases" yaml:"cases"`
	Failures     int    `json:"failures" yaml:"failures"`
	FirstFailure string `json:"first_failure,omitempty" yaml:"first_failure,omitempty"`
}

func (r *checkResult) expect(ok bool, format string, args ...any) {
	r.Cases++
	if ok {
		return
	}
	if r.Failures == 0 {
		r.FirstFailure = fmt.Sprintf(format, args...)
	}
	r.Failures++
}

// checkReport is the summary printed by the check command.
type checkReport struct {
	Checks   []checkResult `json:"checks" yaml:"checks"`
	Cases    int           `json:"cases" yaml:"cases"`
	Failures int           `json:"failures" yaml:"failures"`
}

func (r checkReport) Grid() render.Grid {
	g := render.Grid{
		Title:      "invariant checks",
		Header:     []string{"Check", "Cases", "Failures", "Status"},
		AlignRight: []int{2, 3},
	}
	for _, c := range r.Checks {
		status := "ok"
		if c.Failures > 0 {
			status = "FAIL: " + c.FirstFailure
		}
		g.Rows = append(g.Rows, []string{c.Name, strconv.Itoa(c.Cases), strconv.Itoa(c.Failures), status})
	}
	g.Footer = []string{"total", strconv.Itoa(r.Cases), strconv.Itoa(r.Failures), ""}
	return g
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the sixty cycle's structural invariants",
		Long: `Runs every structural invariant over the stem, branch and sixty-cycle
tables: cyclic closure, step composition, name round trip, stem/branch
consistency, void-branch pairing and the clash/combine/harm involutions.
Exits non-zero if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := runChecks()
			ctx := cmd.Context()

			for _, c := range report.Checks {
				logger.Debug(ctx, "invariant checked",
					slog.String("check", c.Name),
					slog.Int("cases", c.Cases),
					slog.Int("failures", c.Failures),
				)
			}

			if err := a.write(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Failures > 0 {
				err := fmt.Errorf("%d of %d invariant cases failed", report.Failures, report.Cases)
				logger.Error(ctx, "invariant checks failed", err, slog.Int("failures", report.Failures))
				return err
			}
			logger.Info(ctx, "invariant checks passed",
				slog.Int("checks", len(report.Checks)),
				slog.Int("cases", report.Cases),
			)
			return nil
		},
	}
}

func runChecks() checkReport {
	checks := []checkResult{
		checkClosure("heaven stem closure", 10, sixtycycle.HeavenStemFromIndex),
		checkClosure("earth branch closure", 12, sixtycycle.EarthBranchFromIndex),
		checkClosure("sixty cycle closure", 60, sixtycycle.SixtyCycleFromIndex),
		checkComposition("heaven stem composition", 10, sixtycycle.HeavenStemFromIndex),
		checkComposition("earth branch composition", 12, sixtycycle.EarthBranchFromIndex),
		checkComposition("sixty cycle composition", 60, sixtycycle.SixtyCycleFromIndex),
		checkRoundTrip(),
		checkStemBranch(),
		checkVoidBranches(),
		checkInvolutions(),
		checkHiddenStems(),
	}

	report := checkReport{Checks: checks}
	for _, c := range checks {
		report.Cases += c.Cases
		report.Failures += c.Failures
	}
	return report
}

type stepper[T any] interface {
	comparable
	Next(n int) T
}

func checkClosure[T stepper[T]](name string, size int, from func(int) T) checkResult {
	r := checkResult{Name: name}
	for k := -2 * size; k < 2*size; k++ {
		r.expect(from(k) == from(k+size), "index %d differs from %d", k, k+size)
	}
	return r
}

func checkComposition[T stepper[T]](name string, size int, from func(int) T) checkResult {
	r := checkResult{Name: name}
	for i := 0; i < size; i++ {
		x := from(i)
		for a := -size; a <= size; a += 3 {
			for b := -size; b <= size; b += 5 {
				r.expect(x.Next(a).Next(b) == x.Next(a+b), "%v.Next(%d).Next(%d) != Next(%d)", x, a, b, a+b)
			}
		}
	}
	return r
}

func checkRoundTrip() checkResult {
	r := checkResult{Name: "name round trip"}
	for i := 0; i < 10; i++ {
		s := sixtycycle.HeavenStemFromIndex(i)
		got, err := sixtycycle.HeavenStemFromName(s.Name())
		r.expect(err == nil && got == s, "stem %s", s)
	}
	for i := 0; i < 12; i++ {
		b := sixtycycle.EarthBranchFromIndex(i)
		got, err := sixtycycle.EarthBranchFromName(b.Name())
		r.expect(err == nil && got == b, "branch %s", b)
	}
	for _, c := range sixtycycle.All() {
		got, err := sixtycycle.SixtyCycleFromName(c.Name())
		r.expect(err == nil && got == c, "cycle %s", c)
	}
	return r
}

func checkStemBranch() checkResult {
	r := checkResult{Name: "stem/branch consistency"}
	for i, c := range sixtycycle.All() {
		stem, branch := c.HeavenStem(), c.EarthBranch()
		r.expect(stem.Index() == i%10 && branch.Index() == i%12 && c.Name() == stem.Name()+branch.Name(),
			"%s at %d pairs %s%s", c, i, stem, branch)
	}
	return r
}

func checkVoidBranches() checkResult {
	r := checkResult{Name: "void-branch pairing"}
	for _, c := range sixtycycle.All() {
		extra := c.ExtraEarthBranches()
		start := c.Next(-c.HeavenStem().Index())
		paired := make(map[sixtycycle.EarthBranch]bool, 10)
		for i := 0; i < 10; i++ {
			paired[start.Next(i).EarthBranch()] = true
		}
		r.expect(extra[1] == extra[0].Next(1) && !paired[extra[0]] && !paired[extra[1]],
			"%s void %s%s", c, extra[0], extra[1])
	}
	return r
}

func checkInvolutions() checkResult {
	r := checkResult{Name: "clash/combine/harm involution"}
	for i := 0; i < 12; i++ {
		b := sixtycycle.EarthBranchFromIndex(i)
		r.expect(b.Opposite().Opposite() == b, "%s opposite", b)
		r.expect(b.Combine().Combine() == b, "%s combine", b)
		r.expect(b.Harm().Harm() == b, "%s harm", b)
	}
	for i := 0; i < 10; i++ {
		s := sixtycycle.HeavenStemFromIndex(i)
		r.expect(s.Combine().Combine() == s, "%s combine", s)
	}
	return r
}

func checkHiddenStems() checkResult {
	r := checkResult{Name: "hidden stem order"}
	for i := 0; i < 12; i++ {
		b := sixtycycle.EarthBranchFromIndex(i)
		stems := b.HideHeavenStems()
		ok := len(stems) >= 1 && len(stems) <= 3 && stems[0].Type() == culture.Main
		for j := 1; ok && j < len(stems); j++ {
			ok = stems[j].Type() < stems[j-1].Type()
		}
		r.expect(ok, "%s hidden stems %v", b, stems)
	}
	return r
}
