// pkg/registry/schema.go
package registry

// ImplementationStatus tracks how far a task type has progressed.
type ImplementationStatus string

const (
	StatusPlanned     ImplementationStatus = "planned"
	StatusInProgress  ImplementationStatus = "in-progress"
	StatusImplemented ImplementationStatus = "implemented"
	StatusVerified    ImplementationStatus = "verified"
)

// Statuses lists every status in lifecycle order.
func Statuses() []ImplementationStatus {
	return []ImplementationStatus{StatusPlanned, StatusInProgress, StatusImplemented, StatusVerified}
}

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (ImplementationStatus, bool) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one Zeebe task type served by the assessment workers.
// ErrorCodes are the BPMN codes a process may catch on its boundary events.
type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus ImplementationStatus   `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Workflows            []string               `json:"workflows,omitempty"`
	Tags                 []string               `json:"tags,omitempty"`
}
