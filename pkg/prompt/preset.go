package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Preset holds dialog answers, loaded from YAML or built from flags.
// A field left unset leaves its question unanswered. A Key implies yes to
// using a transparency color unless UseKey says otherwise.
type Preset struct {
	Image     string `yaml:"image,omitempty"`
	Watermark string `yaml:"watermark,omitempty"`
	Alpha     *bool  `yaml:"alpha,omitempty"`
	UseKey    *bool  `yaml:"use_key,omitempty"`
	Key       string `yaml:"key,omitempty"` // "R G B"
	Weight    *int   `yaml:"weight,omitempty"`
	Method    string `yaml:"method,omitempty"`
	Position  string `yaml:"position,omitempty"` // "X Y"
	Output    string `yaml:"output,omitempty"`
}

func (p *Preset) Ask(q Question, _ string) (string, bool) {
	switch q {
	case AskImage:
		return p.Image, p.Image != ""
	case AskWatermark:
		return p.Watermark, p.Watermark != ""
	case AskUseAlpha:
		if p.Alpha == nil {
			return "", false
		}
		return yesNo(*p.Alpha), true
	case AskUseKey:
		if p.UseKey != nil {
			return yesNo(*p.UseKey), true
		}
		return "yes", p.Key != ""
	case AskKey:
		return p.Key, p.Key != ""
	case AskWeight:
		if p.Weight == nil {
			return "", false
		}
		return strconv.Itoa(*p.Weight), true
	case AskMethod:
		return p.Method, p.Method != ""
	case AskPosition:
		return p.Position, p.Position != ""
	case AskOutput:
		return p.Output, p.Output != ""
	}
	return "", false
}

func (p *Preset) set(q Question, answer string) {
	switch q {
	case AskImage:
		p.Image = answer
	case AskWatermark:
		p.Watermark = answer
	case AskUseAlpha:
		yes := isYes(answer)
		p.Alpha = &yes
	case AskUseKey:
		yes := isYes(answer)
		p.UseKey = &yes
	case AskKey:
		p.Key = answer
	case AskWeight:
		if w, err := strconv.Atoi(answer); err == nil {
			p.Weight = &w
		}
	case AskMethod:
		p.Method = strings.ToLower(answer)
	case AskPosition:
		p.Position = answer
	case AskOutput:
		p.Output = answer
	}
}

// Merge returns p with every field set in o taking precedence.
func (p Preset) Merge(o Preset) Preset {
	if o.Image != "" {
		p.Image = o.Image
	}
	if o.Watermark != "" {
		p.Watermark = o.Watermark
	}
	if o.Alpha != nil {
		p.Alpha = o.Alpha
	}
	if o.UseKey != nil {
		p.UseKey = o.UseKey
	}
	if o.Key != "" {
		p.Key = o.Key
	}
	if o.Weight != nil {
		p.Weight = o.Weight
	}
	if o.Method != "" {
		p.Method = o.Method
	}
	if o.Position != "" {
		p.Position = o.Position
	}
	if o.Output != "" {
		p.Output = o.Output
	}
	return p
}

func (p Preset) IsZero() bool {
	return p == Preset{}
}

// ReadPreset reads a preset from a YAML file
func ReadPreset(fs afero.Fs, path string) (*Preset, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset %s failed: %w", path, err)
	}

	return &preset, nil
}

// WritePreset writes a preset to a YAML file
func WritePreset(fs afero.Fs, preset *Preset, path string) error {
	data, err := yaml.Marshal(preset)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0644)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func isYes(answer string) bool {
	return strings.ToLower(answer) == "yes"
}
