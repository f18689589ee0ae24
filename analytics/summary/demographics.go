package summary

import "github.com/Abraxas-365/recruitboard/recruitment/applicant"

// Bucket is one demographic category
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Demographics splits applicants by gender and age band. Missing values
// fall into the 미지정 bucket.
type Demographics struct {
	Gender []Bucket `json:"gender"`
	Age    []Bucket `json:"age"`
}

const unspecified = "미지정"

var (
	genderBuckets = []string{"남", "여", unspecified}
	ageBuckets    = []string{"20대 미만", "20대", "30대", "40대", "50대 이상", unspecified}
)

// Demographic buckets the applicants. Every bucket is present, in fixed order.
func Demographic(applicants []applicant.Applicant) Demographics {
	gender := make([]int, len(genderBuckets))
	age := make([]int, len(ageBuckets))

	for i := range applicants {
		a := &applicants[i]
		switch a.Gender {
		case applicant.GenderMale:
			gender[0]++
		case applicant.GenderFemale:
			gender[1]++
		default:
			gender[2]++
		}
		age[ageBand(a)]++
	}

	return Demographics{
		Gender: buckets(genderBuckets, gender),
		Age:    buckets(ageBuckets, age),
	}
}

func ageBand(a *applicant.Applicant) int {
	if !a.HasAge() {
		return 5
	}
	switch age := *a.Age; {
	case age < 20:
		return 0
	case age < 30:
		return 1
	case age < 40:
		return 2
	case age < 50:
		return 3
	default:
		return 4
	}
}

func buckets(labels []string, counts []int) []Bucket {
	out := make([]Bucket, len(labels))
	for i, l := range labels {
		out[i] = Bucket{Label: l, Count: counts[i]}
	}
	return out
}
