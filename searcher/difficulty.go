package searcher

import (
	"fmt"
	"strings"
	"time"

	"othello/game"
)

// Difficulty bundles the budgets of one AI strength level. MaxTime and
// MaxNodes of zero mean unlimited; MaxDepth is always bounded.
type Difficulty struct {
	Name     string        `yaml:"name" json:"name"`
	MaxDepth int           `yaml:"max_depth" json:"max_depth"`
	MaxTime  time.Duration `yaml:"max_time" json:"max_time"`
	MaxNodes int           `yaml:"max_nodes" json:"max_nodes"`
	Weights  game.Weights  `yaml:"weights" json:"weights"`
}

var (
	Beginner = Difficulty{
		Name:     "beginner",
		MaxDepth: 1,
		MaxTime:  100 * time.Millisecond,
		Weights:  game.Weights{Disc: 1},
	}
	Easy = Difficulty{
		Name:     "easy",
		MaxDepth: 2,
		MaxTime:  250 * time.Millisecond,
		Weights:  game.DefaultWeights,
	}
	Medium = Difficulty{
		Name:     "medium",
		MaxDepth: 4,
		MaxTime:  500 * time.Millisecond,
		Weights:  game.DefaultWeights,
	}
	Hard = Difficulty{
		Name:     "hard",
		MaxDepth: 6,
		MaxTime:  time.Second,
		Weights:  game.DefaultWeights,
	}
	Expert = Difficulty{
		Name:     "expert",
		MaxDepth: 8,
		MaxTime:  2 * time.Second,
		MaxNodes: 2_000_000,
		Weights:  game.DefaultWeights,
	}
)

// Difficulties lists the built-in levels from weakest to strongest.
var Difficulties = []Difficulty{Beginner, Easy, Medium, Hard, Expert}

func DifficultyByName(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}

func (d Difficulty) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("difficulty must have a name")
	}
	if d.MaxDepth < 1 || d.MaxDepth > MaxSearchDepth {
		return fmt.Errorf("difficulty %s: max depth %d not in [1, %d]", d.Name, d.MaxDepth, MaxSearchDepth)
	}
	if d.MaxTime < 0 {
		return fmt.Errorf("difficulty %s: max time must be >= 0", d.Name)
	}
	if d.MaxNodes < 0 {
		return fmt.Errorf("difficulty %s: max nodes must be >= 0", d.Name)
	}
	if err := d.Weights.Validate(); err != nil {
		return fmt.Errorf("difficulty %s: %w", d.Name, err)
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s(depth=%d, time=%s, nodes=%d)", d.Name, d.MaxDepth, d.MaxTime, d.MaxNodes)
}
