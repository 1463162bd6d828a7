package leetcode

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"leetstats/internal/domain/model"
)

// Submission estimates for the stats API, which reports solved counts only.
const (
	estimateAllFactor    = 3
	estimateEasyFactor   = 2
	estimateMediumFactor = 3
	estimateHardFactor   = 4
)

// NormalizeGraphQL converts a relayed userPublicProfile response into canonical stats.
// Buckets are matched on their difficulty tag, so the order upstream returns them in
// does not matter; a missing bucket is a malformed response.
func NormalizeGraphQL(body []byte, username string) (*model.UserSolvedStats, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", model.ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)

	if errs := root.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return nil, fmt.Errorf("%w: graphql error: %s", model.ErrMalformedResponse, errs.Get("0.message").String())
	}

	user := root.Get("data.matchedUser")
	if !user.IsObject() {
		return nil, fmt.Errorf("%w: matchedUser missing", model.ErrMalformedResponse)
	}
	submitStats := user.Get("submitStats")
	if !submitStats.IsObject() {
		return nil, fmt.Errorf("%w: submitStats missing", model.ErrMalformedResponse)
	}

	questions, err := bucketCounts("allQuestionsCount", root.Get("data.allQuestionsCount"), "count")
	if err != nil {
		return nil, err
	}
	solved, err := bucketCounts("acSubmissionNum", submitStats.Get("acSubmissionNum"), "count")
	if err != nil {
		return nil, err
	}
	submissions, err := bucketCounts("totalSubmissionNum", submitStats.Get("totalSubmissionNum"), "submissions")
	if err != nil {
		return nil, err
	}

	name := user.Get("username").String()
	if name == "" {
		name = username
	}

	return &model.UserSolvedStats{
		Username:    name,
		Source:      model.SourceGraphQLRelay,
		Questions:   questions,
		Solved:      solved,
		Submissions: submissions,
	}, nil
}

func bucketCounts(label string, list gjson.Result, field string) (model.QuestionCounts, error) {
	var counts model.QuestionCounts
	if !list.IsArray() {
		return counts, fmt.Errorf("%w: %s missing", model.ErrMalformedResponse, label)
	}

	seen := make(map[model.Difficulty]bool, len(model.Difficulties))
	for _, item := range list.Array() {
		difficulty := model.Difficulty(item.Get("difficulty").String())
		if !isKnownDifficulty(difficulty) {
			continue
		}
		value := item.Get(field)
		if value.Type != gjson.Number {
			return counts, fmt.Errorf("%w: %s[%s].%s is not a number", model.ErrMalformedResponse, label, difficulty, field)
		}
		if value.Num != math.Trunc(value.Num) {
			return counts, fmt.Errorf("%w: %s[%s].%s is not an integer", model.ErrMalformedResponse, label, difficulty, field)
		}
		if value.Num < 0 {
			return counts, fmt.Errorf("%w: %s[%s].%s is negative", model.ErrMalformedResponse, label, difficulty, field)
		}
		counts.Set(difficulty, int(value.Int()))
		seen[difficulty] = true
	}

	for _, d := range model.Difficulties {
		if !seen[d] {
			return counts, fmt.Errorf("%w: %s has no %s bucket", model.ErrMalformedResponse, label, d)
		}
	}
	return counts, nil
}

func isKnownDifficulty(d model.Difficulty) bool {
	for _, known := range model.Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

type statsAPIResponse struct {
	Status             string   `json:"status"`
	Message            string   `json:"message"`
	TotalSolved        *int     `json:"totalSolved"`
	TotalQuestions     *int     `json:"totalQuestions"`
	EasySolved         *int     `json:"easySolved"`
	TotalEasy          *int     `json:"totalEasy"`
	MediumSolved       *int     `json:"mediumSolved"`
	TotalMedium        *int     `json:"totalMedium"`
	HardSolved         *int     `json:"hardSolved"`
	TotalHard          *int     `json:"totalHard"`
	AcceptanceRate     *float64 `json:"acceptanceRate"`
	Ranking            *int     `json:"ranking"`
	ContributionPoints *int     `json:"contributionPoints"`
	Reputation         *int     `json:"reputation"`
}

// NormalizeStatsAPI converts a stats API document into canonical stats. The API
// carries no submission counts, so they are estimated from solved counts and the
// result is flagged SubmissionsEstimated.
func NormalizeStatsAPI(body []byte, username string) (*model.UserSolvedStats, error) {
	var raw statsAPIResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode stats api body: %v", model.ErrMalformedResponse, err)
	}

	if raw.Status != "" && raw.Status != "success" {
		msg := raw.Message
		if msg == "" {
			msg = raw.Status
		}
		return nil, fmt.Errorf("%w: stats api: %s", model.ErrMalformedResponse, msg)
	}

	required := []struct {
		name  string
		value *int
	}{
		{"totalSolved", raw.TotalSolved},
		{"totalQuestions", raw.TotalQuestions},
		{"easySolved", raw.EasySolved},
		{"totalEasy", raw.TotalEasy},
		{"mediumSolved", raw.MediumSolved},
		{"totalMedium", raw.TotalMedium},
		{"hardSolved", raw.HardSolved},
		{"totalHard", raw.TotalHard},
	}
	var missing, negative []string
	for _, field := range required {
		switch {
		case field.value == nil:
			missing = append(missing, field.name)
		case *field.value < 0:
			negative = append(negative, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", model.ErrMalformedResponse, strings.Join(missing, ", "))
	}
	if len(negative) > 0 {
		return nil, fmt.Errorf("%w: negative %s", model.ErrMalformedResponse, strings.Join(negative, ", "))
	}

	solved := model.QuestionCounts{
		Total:  *raw.TotalSolved,
		Easy:   *raw.EasySolved,
		Medium: *raw.MediumSolved,
		Hard:   *raw.HardSolved,
	}

	return &model.UserSolvedStats{
		Username: username,
		Source:   model.SourceStatsAPI,
		Questions: model.QuestionCounts{
			Total:  *raw.TotalQuestions,
			Easy:   *raw.TotalEasy,
			Medium: *raw.TotalMedium,
			Hard:   *raw.TotalHard,
		},
		Solved: solved,
		Submissions: model.QuestionCounts{
			Total:  solved.Total * estimateAllFactor,
			Easy:   solved.Easy * estimateEasyFactor,
			Medium: solved.Medium * estimateMediumFactor,
			Hard:   solved.Hard * estimateHardFactor,
		},
		SubmissionsEstimated: true,
		Metrics: model.Metrics{
			AcceptanceRate:     raw.AcceptanceRate,
			Ranking:            raw.Ranking,
			ContributionPoints: raw.ContributionPoints,
			Reputation:         raw.Reputation,
		},
	}, nil
}
