package domain

// Selector picks randomized item subsets and builds multiple-choice road-sign questions.
type Selector struct {
	rnd             RandomSource
	distractorCount int
}

// NewSelector creates a Selector. A nil source falls back to DefaultRandom.
func NewSelector(rnd RandomSource, distractorCount int) *Selector {
	if rnd == nil {
		rnd = DefaultRandom
	}
	if distractorCount < 0 {
		distractorCount = 0
	}
	return &Selector{rnd: rnd, distractorCount: distractorCount}
}

// FilterByGroup returns the items in groupKey, or every item when groupKey is empty.
func FilterByGroup(catalog []AssessmentItem, groupKey string) []AssessmentItem {
	if groupKey == "" {
		return catalog
	}
	filtered := make([]AssessmentItem, 0, len(catalog))
	for _, item := range catalog {
		if item.GroupKey == groupKey {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SelectItems filters catalog by group, shuffles it and returns the first count items.
// Asking for more than is available returns everything; an empty result is not an error.
func (s *Selector) SelectItems(catalog []AssessmentItem, groupFilter string, count int) ([]AssessmentItem, error) {
	if count <= 0 {
		return nil, NewInvalidSelectionError("count must be a positive integer").WithContext("count", count)
	}
	shuffled := Shuffle(s.rnd, FilterByGroup(catalog, groupFilter))
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}

// SynthesizeDistractors builds a lettered question around correct with up to
// distractorCount wrong options drawn from pool. The pool is de-duplicated and
// never yields the correct item, so no option repeats an item.
func (s *Selector) SynthesizeDistractors(correct AssessmentItem, pool []AssessmentItem, distractorCount int) PresentedQuestion {
	seen := map[string]struct{}{correct.ID: {}}
	candidates := make([]AssessmentItem, 0, len(pool))
	for _, item := range pool {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		candidates = append(candidates, item)
	}

	distractors := Shuffle(s.rnd, candidates)
	if distractorCount < 0 {
		distractorCount = 0
	}
	if distractorCount < len(distractors) {
		distractors = distractors[:distractorCount]
	}

	options := make([]AnswerOption, 0, len(distractors)+1)
	options = append(options, AnswerOption{Text: correct.Detail, ItemID: correct.ID})
	for _, d := range distractors {
		options = append(options, AnswerOption{Text: d.Detail, ItemID: d.ID})
	}
	options = Shuffle(s.rnd, options)

	question := PresentedQuestion{Item: correct, Options: options}
	for i := range question.Options {
		question.Options[i].Letter = LetterFor(i)
		if question.Options[i].ItemID == correct.ID {
			question.CorrectLetter = question.Options[i].Letter
		}
	}
	return question
}

// BuildRoadSignTest selects count signs and gives each one a set of distractors
// drawn from the same filtered catalog.
func (s *Selector) BuildRoadSignTest(catalog []AssessmentItem, groupFilter string, count int) ([]PresentedQuestion, error) {
	signs := FilterByGroup(catalog, groupFilter)
	selected, err := s.SelectItems(signs, "", count)
	if err != nil {
		return nil, err
	}
	questions := make([]PresentedQuestion, 0, len(selected))
	for _, sign := range selected {
		questions = append(questions, s.SynthesizeDistractors(sign, signs, s.distractorCount))
	}
	return questions, nil
}
