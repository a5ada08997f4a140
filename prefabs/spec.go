package prefabs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/spritewalk/ecs/component"
	"gopkg.in/yaml.v3"
)

const PlayerSpecFile = "player.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type PlayerSpec struct {
	Name        string        `yaml:"name"`
	MoveSpeed   int           `yaml:"move_speed"`
	InputPolicy string        `yaml:"input_policy"`
	Transform   TransformSpec `yaml:"transform"`
	Animation   AnimationSpec `yaml:"animation"`
	Game        GameSpec      `yaml:"game"`
}

// LoadPlayerSpec reads player.yaml from disk when present, else from the
// embedded copy, fills defaults and validates it.
func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load(PlayerSpecFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", PlayerSpecFile, err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerSpecFile, err)
	}
	return spec, nil
}

func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "player"
	}
	if s.MoveSpeed == 0 {
		s.MoveSpeed = component.DefaultMoveSpeed
	}
	if s.InputPolicy == "" {
		s.InputPolicy = string(component.PolicyLastPressed)
	}
	if s.Animation.FrameCount == 0 {
		s.Animation.FrameCount = 3
	}
	if s.Animation.DefaultRow == "" {
		s.Animation.DefaultRow = component.DirectionDown.String()
	}
	if len(s.Animation.Rows) == 0 {
		s.Animation.Rows = map[string]int{}
		for d, row := range component.DefaultRowOrder {
			s.Animation.Rows[d.String()] = row
		}
	}
	s.Game.applyDefaults()
}

// Validate reports the first problem that would make the entity unusable.
func (s *PlayerSpec) Validate() error {
	if s.MoveSpeed < 0 {
		return fmt.Errorf("%w: move_speed %d is negative", ErrInvalidSpec, s.MoveSpeed)
	}
	if _, err := component.ParseInputPolicy(s.InputPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if err := s.Animation.Validate(); err != nil {
		return err
	}
	return s.Game.Validate()
}

// Player returns the movement settings for the Player component.
func (s *PlayerSpec) Player() component.Player {
	policy, err := component.ParseInputPolicy(s.InputPolicy)
	if err != nil {
		policy = component.PolicyLastPressed
	}
	return component.Player{MoveSpeed: s.MoveSpeed, Policy: policy}
}

type TransformSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func (r RectSpec) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type AnimationSpec struct {
	Sheet      string         `yaml:"sheet"`
	Frame      RectSpec       `yaml:"frame"`
	FrameCount int            `yaml:"frame_count"`
	DefaultRow string         `yaml:"default_row"`
	Rows       map[string]int `yaml:"rows"`
}

func (a AnimationSpec) Validate() error {
	if a.Sheet == "" {
		return fmt.Errorf("%w: animation.sheet is empty", ErrInvalidSpec)
	}
	if a.Frame.W <= 0 || a.Frame.H <= 0 {
		return fmt.Errorf("%w: animation.frame must have a positive size, got %dx%d", ErrInvalidSpec, a.Frame.W, a.Frame.H)
	}
	if a.Frame.X < 0 || a.Frame.Y < 0 {
		return fmt.Errorf("%w: animation.frame origin (%d,%d) is negative", ErrInvalidSpec, a.Frame.X, a.Frame.Y)
	}
	if a.FrameCount <= 0 {
		return fmt.Errorf("%w: animation.frame_count %d must be positive", ErrInvalidSpec, a.FrameCount)
	}
	if _, err := component.ParseDirection(a.DefaultRow); err != nil {
		return fmt.Errorf("%w: animation.default_row: %v", ErrInvalidSpec, err)
	}
	if _, err := a.RowOrder(); err != nil {
		return err
	}
	return nil
}

// RowOrder converts the rows table, requiring all four directions on
// distinct non-negative rows.
func (a AnimationSpec) RowOrder() (component.RowOrder, error) {
	order := component.RowOrder{}
	used := map[int]string{}
	for name, row := range a.Rows {
		d, err := component.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("%w: animation.rows: %v", ErrInvalidSpec, err)
		}
		if row < 0 {
			return nil, fmt.Errorf("%w: animation.rows.%s is negative", ErrInvalidSpec, name)
		}
		if other, ok := used[row]; ok {
			return nil, fmt.Errorf("%w: animation.rows: %s and %s share row %d", ErrInvalidSpec, other, name, row)
		}
		used[row] = name
		order[d] = row
	}
	for _, d := range component.Directions {
		if _, ok := order[d]; !ok {
			return nil, fmt.Errorf("%w: animation.rows is missing %s", ErrInvalidSpec, d)
		}
	}
	return order, nil
}

type GameSpec struct {
	Title           string     `yaml:"title"`
	Width           int        `yaml:"width"`
	Height          int        `yaml:"height"`
	TPS             int        `yaml:"tps"`
	Background      *YAMLColor `yaml:"background"`
	CameraSmoothing float64    `yaml:"camera_smoothing"`
}

func (g *GameSpec) applyDefaults() {
	if g.Title == "" {
		g.Title = "Sprite Game"
	}
	if g.Width == 0 {
		g.Width = 800
	}
	if g.Height == 0 {
		g.Height = 600
	}
	if g.TPS == 0 {
		g.TPS = 20
	}
	if g.Background == nil {
		g.Background = &YAMLColor{Color: color.NRGBA{R: 33, G: 33, B: 33, A: 255}}
	}
}

func (g GameSpec) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: game window %dx%d", ErrInvalidSpec, g.Width, g.Height)
	}
	if g.TPS <= 0 {
		return fmt.Errorf("%w: game.tps %d must be positive", ErrInvalidSpec, g.TPS)
	}
	if g.CameraSmoothing < 0 {
		return fmt.Errorf("%w: game.camera_smoothing %v is negative", ErrInvalidSpec, g.CameraSmoothing)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
