// Package scorer implements the rule-based ATS evaluation of a parsed
// resume. Scores are deterministic and total: any record yields a score in
// [0,100] plus itemized feedback, never an error.
package scorer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rajan170/ai-resume-analyzer/internal/parser"
)

// essentialSections are checked as plain substrings, in this order.
var essentialSections = []string{"experience", "education", "skills", "projects", "summary", "objective"}

// metricsRe detects quantifiable impact: a percentage, a dollar figure, or a
// number next to a business word. Matches anywhere in the raw text.
var metricsRe = regexp.MustCompile(`\d+%|\$\d+|\d+\s?(?:users|clients|customers|revenue|sales)`)

const (
	namePoints    = 5
	emailPoints   = 10
	phonePoints   = 5
	skillsFull    = 25
	skillsPartial = 15
	sectionPoints = 15
	metricsPoints = 15
	lengthPoints  = 10
	minSkillsFull = 5
	minWords      = 200
	maxWords      = 1000
)

// ScoreReport is the result of scoring one record. Feedback order follows
// evaluation order, not severity. Derived and disposable.
type ScoreReport struct {
	ATSScore      int      `json:"ats_score"`
	Feedback      []string `json:"feedback"`
	FoundSections []string `json:"found_sections"`
}

// Score evaluates a candidate record against the fixed ATS criteria:
// contact info (20), skills (25), essential sections (30), quantifiable
// metrics (15) and length (10). The total is monotonic in each criterion.
func Score(record parser.CandidateRecord) ScoreReport {
	score := 0
	feedback := []string{}

	if record.Name != "" {
		score += namePoints
	} else {
		feedback = append(feedback, "Name not detected. Ensure it's prominent.")
	}
	if record.Email != "" {
		score += emailPoints
	} else {
		feedback = append(feedback, "Email not detected.")
	}
	if record.Phone != "" {
		score += phonePoints
	} else {
		feedback = append(feedback, "Phone number not detected.")
	}

	switch n := len(record.Skills); {
	case n >= minSkillsFull:
		score += skillsFull
	case n > 0:
		score += skillsPartial
		feedback = append(feedback, fmt.Sprintf("Only found %d skills. Try to include at least 5 relevant technical skills.", n))
	default:
		feedback = append(feedback, "No skills detected. Use standard keywords for your industry.")
	}

	rawLower := strings.ToLower(record.RawText)
	found := FoundSections(record.RawText)

	if contains(found, "experience") || strings.Contains(rawLower, "work history") {
		score += sectionPoints
	} else {
		feedback = append(feedback, "Missing 'Experience' or 'Work History' section.")
	}
	if contains(found, "education") {
		score += sectionPoints
	} else {
		feedback = append(feedback, "Missing 'Education' section.")
	}

	if metricsRe.MatchString(record.RawText) {
		score += metricsPoints
	} else {
		feedback = append(feedback, "No quantifiable metrics found (e.g., 'increased revenue by 20%'). Quantify your impact.")
	}

	switch wordCount := len(strings.Fields(record.RawText)); {
	case wordCount >= minWords && wordCount <= maxWords:
		score += lengthPoints
	case wordCount < minWords:
		feedback = append(feedback, "Resume seems too short. Elaborate on your experience.")
	default:
		feedback = append(feedback, "Resume might be too long. Aim for 1-2 pages.")
	}

	return ScoreReport{
		ATSScore:      score,
		Feedback:      feedback,
		FoundSections: found,
	}
}

// FoundSections reports which essential sections appear in text, as
// case-insensitive substrings, in the fixed section order.
func FoundSections(text string) []string {
	textLower := strings.ToLower(text)
	found := []string{}
	for _, section := range essentialSections {
		if strings.Contains(textLower, section) {
			found = append(found, section)
		}
	}
	return found
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
