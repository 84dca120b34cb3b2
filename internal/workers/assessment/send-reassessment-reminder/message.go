package sendreminder

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var assessmentTitles = map[string]string{
	"big_five":               "Big Five Personality",
	"attachment":             "Attachment Style",
	"mbti":                   "MBTI",
	"disc":                   "DISC",
	"enneagram":              "Enneagram",
	"emotional_intelligence": "Emotional Intelligence",
}

func assessmentTitle(assessmentType string) string {
	if t, ok := assessmentTitles[assessmentType]; ok {
		return t
	}
	return cases.Title(language.English).String(strings.ReplaceAll(assessmentType, "_", " "))
}

func greeting(name string) string {
	if name == "" {
		return "Hi there"
	}
	return "Hi " + name
}

func emailSubject(assessmentType string) string {
	return fmt.Sprintf("Time to retake your %s assessment", assessmentTitle(assessmentType))
}

func emailBody(in *Input, daysSince int) string {
	return fmt.Sprintf(
		"%s,\n\nYou completed your %s assessment %d days ago. People change, and a fresh set of answers keeps your insights accurate.\n\nRetake it whenever you have a few quiet minutes.\n",
		greeting(in.PersonName), assessmentTitle(in.AssessmentType), daysSince,
	)
}

func smsBody(in *Input) string {
	return fmt.Sprintf("%s, your %s results have expired. Retake the assessment to refresh your insights.",
		greeting(in.PersonName), assessmentTitle(in.AssessmentType))
}
