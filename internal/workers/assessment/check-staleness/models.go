package checkstaleness

type Input struct {
	AssessmentType string `json:"assessmentType"`
	CompletedDate  string `json:"completedDate,omitempty"`
	PersonID       string `json:"personId,omitempty"`
}

type Output struct {
	AssessmentType     string `json:"assessmentType"`
	IsOutdated         bool   `json:"isOutdated"`
	ExpirationDays     int    `json:"expirationDays"`
	DaysSinceCompleted int    `json:"daysSinceCompleted"`
	CompletedAt        string `json:"completedAt"`
	ExpiresAt          string `json:"expiresAt"`
}
