package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"learn2drive/internal/domain"

	"gopkg.in/yaml.v3"
)

// Seed file names inside the data directory.
const (
	QuizFileName          = "quiz_questions.yaml"
	RoadSignFileName      = "road_signs.yaml"
	DrivingTestFileName   = "driving_test.yaml"
	TrainingFileName      = "training_phases.yaml"
	TeachingNotesFileName = "teaching_notes.yaml"
)

// QuizQuestion is one written-test question as it appears in the seed file.
type QuizQuestion struct {
	Question    string   `yaml:"question"`
	Choices     []string `yaml:"choices"`
	Correct     string   `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
	Reference   string   `yaml:"reference"`
}

type QuizTopic struct {
	Key         string         `yaml:"key"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Questions   []QuizQuestion `yaml:"questions"`
}

type QuizFile struct {
	Topics []QuizTopic `yaml:"topics"`
}

type RoadSign struct {
	Name    string `yaml:"name"`
	Meaning string `yaml:"meaning"`
}

type RoadSignCategory struct {
	Key         string     `yaml:"key"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Signs       []RoadSign `yaml:"signs"`
}

type RoadSignFile struct {
	Categories []RoadSignCategory `yaml:"categories"`
}

type RubricCriterion struct {
	Name      string `yaml:"name"`
	Guide     string `yaml:"guide"`
	MaxPoints int    `yaml:"max_points"`
}

type RubricCategory struct {
	Key         string            `yaml:"key"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Criteria    []RubricCriterion `yaml:"criteria"`
}

// DrivingTestFile holds the evaluation rubric and the conditions that fail a
// driving test regardless of score.
type DrivingTestFile struct {
	Categories              []RubricCategory `yaml:"categories"`
	AutomaticFailConditions []string         `yaml:"automatic_fail_conditions"`
}

// MaxScore sums the points of every criterion.
func (f *DrivingTestFile) MaxScore() int {
	total := 0
	for _, c := range f.Categories {
		for _, crit := range c.Criteria {
			total += crit.MaxPoints
		}
	}
	return total
}

type TrainingFile struct {
	Phases []domain.PhaseTemplate `yaml:"phases"`
}

type TeachingNotesFile struct {
	Notes map[string]string `yaml:"notes"`
}

// Catalog is the full content of a seed data directory.
type Catalog struct {
	Quiz          QuizFile
	RoadSigns     RoadSignFile
	DrivingTest   DrivingTestFile
	Training      TrainingFile
	TeachingNotes TeachingNotesFile
}

func readYAML(dir, name string, out interface{}) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return nil
}

// LoadCatalog reads every seed file in dir.
func LoadCatalog(dir string) (*Catalog, error) {
	c := &Catalog{}
	files := []struct {
		name string
		out  interface{}
	}{
		{QuizFileName, &c.Quiz},
		{RoadSignFileName, &c.RoadSigns},
		{DrivingTestFileName, &c.DrivingTest},
		{TrainingFileName, &c.Training},
		{TeachingNotesFileName, &c.TeachingNotes},
	}
	for _, f := range files {
		if err := readYAML(dir, f.name, f.out); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadDrivingTest reads only the rubric file.
func LoadDrivingTest(dir string) (*DrivingTestFile, error) {
	var f DrivingTestFile
	if err := readYAML(dir, DrivingTestFileName, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadPhaseTemplates reads the checklist new learners start with.
func LoadPhaseTemplates(dir string) ([]domain.PhaseTemplate, error) {
	var f TrainingFile
	if err := readYAML(dir, TrainingFileName, &f); err != nil {
		return nil, err
	}
	return f.Phases, nil
}

// LoadTeachingNotes reads the title -> guidance mapping.
func LoadTeachingNotes(dir string) (*domain.TeachingNotes, error) {
	var f TeachingNotesFile
	if err := readYAML(dir, TeachingNotesFileName, &f); err != nil {
		return nil, err
	}
	return domain.NewTeachingNotes(f.Notes), nil
}

// Validate checks the rubric against the configured maximum and that every
// group has a key.
func (c *Catalog) Validate(maxScore int) error {
	for _, t := range c.Quiz.Topics {
		if strings.TrimSpace(t.Key) == "" {
			return domain.NewValidationError("quiz topic without key: " + t.Name)
		}
	}
	for _, cat := range c.RoadSigns.Categories {
		if strings.TrimSpace(cat.Key) == "" {
			return domain.NewValidationError("road sign category without key: " + cat.Name)
		}
	}
	for _, cat := range c.DrivingTest.Categories {
		if strings.TrimSpace(cat.Key) == "" {
			return domain.NewValidationError("rubric category without key: " + cat.Name)
		}
	}
	if got := c.DrivingTest.MaxScore(); got != maxScore {
		return domain.NewValidationError(
			fmt.Sprintf("driving test criteria add up to %d points, expected %d", got, maxScore))
	}
	return nil
}

// Groups converts the catalog into item groups and items, per kind, in file order.
func (c *Catalog) Groups() map[domain.AssessmentKind][]GroupItems {
	out := make(map[domain.AssessmentKind][]GroupItems, 3)

	for i, t := range c.Quiz.Topics {
		g := GroupItems{Group: domain.ItemGroup{Key: t.Key, Kind: domain.KindQuiz, Name: t.Name, Description: t.Description, OrderIndex: i}}
		for j, q := range t.Questions {
			detail := q.Explanation
			if q.Reference != "" {
				detail = strings.TrimSpace(detail + " (" + q.Reference + ")")
			}
			g.Items = append(g.Items, domain.AssessmentItem{
				Kind:       domain.KindQuiz,
				GroupKey:   t.Key,
				GroupName:  t.Name,
				Text:       q.Question,
				Detail:     detail,
				Choices:    q.Choices,
				CorrectKey: strings.ToUpper(strings.TrimSpace(q.Correct)),
				OrderIndex: j,
			})
		}
		out[domain.KindQuiz] = append(out[domain.KindQuiz], g)
	}

	for i, cat := range c.RoadSigns.Categories {
		g := GroupItems{Group: domain.ItemGroup{Key: cat.Key, Kind: domain.KindRoadSign, Name: cat.Name, Description: cat.Description, OrderIndex: i}}
		for j, s := range cat.Signs {
			g.Items = append(g.Items, domain.AssessmentItem{
				Kind:       domain.KindRoadSign,
				GroupKey:   cat.Key,
				GroupName:  cat.Name,
				Text:       s.Name,
				Detail:     s.Meaning,
				OrderIndex: j,
			})
		}
		out[domain.KindRoadSign] = append(out[domain.KindRoadSign], g)
	}

	for i, cat := range c.DrivingTest.Categories {
		g := GroupItems{Group: domain.ItemGroup{Key: cat.Key, Kind: domain.KindDrivingTest, Name: cat.Name, Description: cat.Description, OrderIndex: i}}
		for j, crit := range cat.Criteria {
			g.Items = append(g.Items, domain.AssessmentItem{
				Kind:       domain.KindDrivingTest,
				GroupKey:   cat.Key,
				GroupName:  cat.Name,
				Text:       crit.Name,
				Detail:     crit.Guide,
				MaxPoints:  crit.MaxPoints,
				OrderIndex: j,
			})
		}
		out[domain.KindDrivingTest] = append(out[domain.KindDrivingTest], g)
	}

	return out
}

// GroupItems is one group together with the items seeded into it.
type GroupItems struct {
	Group domain.ItemGroup
	Items []domain.AssessmentItem
}
