package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/models"
	"assessment-workers/internal/scoring"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ResultDocument is the searchable projection of a result.
type ResultDocument struct {
	ResultID        string             `json:"resultId"`
	PersonID        string             `json:"personId"`
	AssessmentType  string             `json:"assessmentType"`
	Category        string             `json:"category"`
	PrimaryStyle    string             `json:"primaryStyle,omitempty"`
	Scores          map[string]float64 `json:"scores,omitempty"`
	Percentiles     map[string]int     `json:"percentiles,omitempty"`
	ConfidenceLevel float64            `json:"confidenceLevel"`
	ScoringVersion  string             `json:"scoringVersion"`
	CompletedAt     time.Time          `json:"completedAt"`
	ExpiresAt       *time.Time         `json:"expiresAt,omitempty"`
}

func NewResultDocument(r *models.AssessmentResult) ResultDocument {
	doc := ResultDocument{
		ResultID:        r.ID,
		PersonID:        r.PersonID,
		AssessmentType:  r.AssessmentType,
		Category:        string(scoring.CategoryOf(scoring.AssessmentType(r.AssessmentType))),
		Scores:          r.Scores.RawScores,
		Percentiles:     r.Scores.Percentiles,
		ConfidenceLevel: r.ConfidenceLevel,
		ScoringVersion:  r.ScoringVersion,
		CompletedAt:     r.CompletedAt,
		ExpiresAt:       r.ExpiresAt,
	}
	if r.Scores.AttachmentStyle != nil {
		doc.PrimaryStyle = *r.Scores.AttachmentStyle
		doc.Scores = r.Scores.AttachmentScores
	}
	return doc
}

// ResultIndexer writes result documents to Elasticsearch.
type ResultIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewResultIndexer(client *elasticsearch.Client, index string) *ResultIndexer {
	return &ResultIndexer{client: client, index: index}
}

// Index upserts the document for r, keyed by result id.
func (i *ResultIndexer) Index(ctx context.Context, r *models.AssessmentResult) error {
	body, err := json.Marshal(NewResultDocument(r))
	if err != nil {
		return errors.NewResultIndexFailedError(i.index, err)
	}

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: r.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return errors.NewResultIndexFailedError(i.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewResultIndexFailedError(i.index, fmt.Errorf("elasticsearch: %s", res.Status()))
	}
	return nil
}
