package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStage is returned when stages.yaml has no entry for a scene.
var ErrUnknownStage = errors.New("prefabs: unknown stage")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EnemySpec places one enemy of a stage roster.
type EnemySpec struct {
	Variant string  `yaml:"variant"`
	Slot    int     `yaml:"slot"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Radius  float64 `yaml:"radius"`
	HP      float64 `yaml:"hp"`
}

// StageSpec is one scene's roster and generator settings.
type StageSpec struct {
	Name    string      `yaml:"name"`
	Cadence int         `yaml:"cadence"`
	Script  string      `yaml:"script"`
	Palette string      `yaml:"palette"`
	Enemies []EnemySpec `yaml:"enemies"`
}

type StagesSpec struct {
	Stages []StageSpec `yaml:"stages"`
}

// Stage returns the entry named name.
func (s StagesSpec) Stage(name string) (StageSpec, error) {
	for _, st := range s.Stages {
		if st.Name == name {
			return st, nil
		}
	}
	return StageSpec{}, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

func LoadStagesSpec() (StagesSpec, error) {
	return LoadSpec[StagesSpec]("stages.yaml")
}

// ToneSpec is the synthesized sound of one cue.
type ToneSpec struct {
	Cue       string  `yaml:"cue"`
	Frequency float64 `yaml:"frequency"`
	// Sweep is the frequency reached at the end of the tone; zero keeps it flat.
	Sweep    float64 `yaml:"sweep"`
	Duration float64 `yaml:"duration"`
	Volume   float64 `yaml:"volume"`
}

type AudioSpec struct {
	SampleRate int        `yaml:"sample_rate"`
	Tones      []ToneSpec `yaml:"tones"`
}

func LoadAudioSpec() (AudioSpec, error) {
	return LoadSpec[AudioSpec]("audio.yaml")
}
