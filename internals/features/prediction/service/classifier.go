package service

import (
	"github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/model"
)

var (
	lowCauses      = []string{"High CGPA", "Consistent attendance", "Active participation"}
	lowRecs        = []string{"Maintain study habits", "Engage in leadership roles"}
	moderateCauses = []string{"Moderate CGPA", "Inconsistent attendance", "Limited activity participation"}
	moderateRecs   = []string{"Set weekly goals", "Join clubs", "Seek academic counseling"}
	highCauses     = []string{"Low CGPA", "Poor attendance", "Minimal activity participation"}
	highRecs       = []string{"Mentorship & support", "Identify financial issues", "Personalized study plan"}
)

// Classify maps a dropout probability (percent) into a risk band with its
// fixed cause and recommendation lists. Bands are half-open: [0,30) Low,
// [30,60) Moderate, [60,100] High, so 30.0 is Moderate and 60.0 is High.
func Classify(probability float64) (model.RiskBand, []string, []string) {
	switch {
	case probability < 30:
		return model.BandLow, clone(lowCauses), clone(lowRecs)
	case probability < 60:
		return model.BandModerate, clone(moderateCauses), clone(moderateRecs)
	default:
		return model.BandHigh, clone(highCauses), clone(highRecs)
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
