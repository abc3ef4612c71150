package cli

import (
	"strconv"

	"github.com/zapponejosh/ganzhi/internal/sixtycycle"
)

// Arguments are read as an index when they parse as an integer (any value,
// wrapped around the cycle) and as a name otherwise.

func parseStem(arg string) (sixtycycle.HeavenStem, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		return sixtycycle.HeavenStemFromIndex(i), nil
	}
	return sixtycycle.HeavenStemFromName(arg)
}

func parseBranch(arg string) (sixtycycle.EarthBranch, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		return sixtycycle.EarthBranchFromIndex(i), nil
	}
	return sixtycycle.EarthBranchFromName(arg)
}

func parseCycle(arg string) (sixtycycle.SixtyCycle, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		return sixtycycle.SixtyCycleFromIndex(i), nil
	}
	return sixtycycle.SixtyCycleFromName(arg)
}
