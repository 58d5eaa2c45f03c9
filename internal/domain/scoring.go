package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Score computes the result of a submission against the item definitions under policy.
//
// Every response must reference a known item of the policy's kind, otherwise the whole
// call fails with a dangling-reference error: dropping the response would corrupt the
// denominator. A driving-test submission must carry exactly one evaluation per criterion.
func Score(policy ScoringPolicy, items []AssessmentItem, sub Submission) (*AttemptResult, error) {
	index := make(map[string]*AssessmentItem, len(items))
	for i := range items {
		if items[i].Kind == policy.Kind {
			index[items[i].ID] = &items[i]
		}
	}

	result := &AttemptResult{
		Kind:     policy.Kind,
		Outcomes: make([]ItemOutcome, 0, len(sub.Responses)),
	}
	answered := make(map[string]struct{}, len(sub.Responses))

	for _, resp := range sub.Responses {
		item, ok := index[resp.ItemID]
		if !ok {
			return nil, NewDanglingReferenceError(resp.ItemID)
		}
		if _, dup := answered[resp.ItemID]; dup {
			return nil, NewInvalidSubmissionError(fmt.Sprintf("more than one response for item %s", resp.ItemID))
		}
		answered[resp.ItemID] = struct{}{}

		outcome, err := scoreResponse(policy.Kind, item, resp)
		if err != nil {
			return nil, err
		}
		result.Score += outcome.Earned
		result.Total += outcome.Possible
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if policy.Kind == KindDrivingTest && len(answered) != len(index) {
		var missing []string
		for id := range index {
			if _, ok := answered[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		return nil, NewInvalidSubmissionError("every criterion needs exactly one evaluation").
			WithContext("missing_criteria", strings.Join(missing, ","))
	}

	result.Percentage = Percentage(result.Score, result.Total)
	result.Passed = policy.passes(result.Score, result.Total)
	if policy.Kind == KindDrivingTest && sub.AutomaticFail {
		// Applied last: the score stays as computed for display, only the verdict is forced.
		result.AutomaticFail = true
		result.Passed = false
	}
	result.Breakdown = Breakdown(result.Outcomes)
	return result, nil
}

func scoreResponse(kind AssessmentKind, item *AssessmentItem, resp Response) (ItemOutcome, error) {
	outcome := ItemOutcome{
		ItemID:         item.ID,
		GroupKey:       item.GroupKey,
		GroupName:      item.GroupName,
		Selected:       resp.Selected,
		SelectedItemID: resp.SelectedItemID,
		Note:           resp.Note,
		ElapsedSeconds: resp.ElapsedSeconds,
	}

	switch kind {
	case KindQuiz:
		outcome.Possible = 1
		outcome.Correct = resp.Selected != nil && *resp.Selected == item.CorrectKey
	case KindRoadSign:
		outcome.Possible = 1
		// Identity of the chosen option's item decides, not the letter.
		outcome.Correct = resp.Selected != nil && resp.SelectedItemID == item.ID
	case KindDrivingTest:
		if resp.PointsDeducted < 0 || resp.PointsDeducted > item.MaxPoints {
			return outcome, NewInvalidSubmissionError(
				fmt.Sprintf("points deducted for %s must be between 0 and %d", item.ID, item.MaxPoints)).
				WithContext("points_deducted", resp.PointsDeducted)
		}
		outcome.Possible = item.MaxPoints
		outcome.PointsDeducted = resp.PointsDeducted
		outcome.Earned = item.MaxPoints - resp.PointsDeducted
		outcome.Correct = resp.PointsDeducted == 0
		return outcome, nil
	default:
		return outcome, NewInvalidInputError("unknown assessment kind: " + string(kind))
	}

	if outcome.Correct {
		outcome.Earned = 1
	}
	return outcome, nil
}

func (p ScoringPolicy) passes(score, total int) bool {
	if p.Kind == KindDrivingTest {
		return score >= p.PassScore
	}
	if total == 0 {
		return false
	}
	// Exact integer comparison of score/total against PassPercent/100.
	return score*100 >= p.PassPercent*total
}

// Percentage returns round(100*earned/possible), or 0 when nothing was possible.
func Percentage(earned, possible int) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(float64(earned) * 100 / float64(possible)))
}
