package config

import (
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"os"
)

// AttackConfig names one attack of a robustness sweep. Params left out fall back to the attack's defaults.
type AttackConfig struct {
	Kind   string             `toml:"kind" json:"kind"`
	Params map[string]float64 `toml:"params" json:"params,omitempty"`
}

// BenchConfig drives a robustness sweep: one embedding followed by every listed attack.
type BenchConfig struct {
	Embed   EmbedConfig    `toml:"embed" json:"embed"`
	Attacks []AttackConfig `toml:"attack" json:"attacks"`
}

func DefaultAttacks() []AttackConfig {
	return []AttackConfig{
		{Kind: "jpeg", Params: map[string]float64{"quality": 90}},
		{Kind: "jpeg", Params: map[string]float64{"quality": 75}},
		{Kind: "jpeg", Params: map[string]float64{"quality": 50}},
		{Kind: "blur", Params: map[string]float64{"kernel_size": 3, "sigma": 1}},
		{Kind: "blur", Params: map[string]float64{"kernel_size": 5, "sigma": 1.5}},
		{Kind: "crop", Params: map[string]float64{"crop_ratio": 0.9}},
		{Kind: "crop", Params: map[string]float64{"crop_ratio": 0.75}},
		{Kind: "noise", Params: map[string]float64{"mean": 0, "sigma": 5}},
		{Kind: "noise", Params: map[string]float64{"mean": 0, "sigma": 10}},
	}
}

func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Embed:   DefaultEmbedConfig(),
		Attacks: DefaultAttacks(),
	}
}

// ParseBenchConfig decodes a TOML sweep description such as
//
//	[embed]
//	method = "adaptive"
//	threshold = 40
//
//	[[attack]]
//	kind = "jpeg"
//	params = { quality = 60.0 }
//
// Parameter values are floats, so whole numbers need a decimal point. Missing embed settings keep their defaults and an
// empty attack list selects DefaultAttacks.
func ParseBenchConfig(data []byte) (BenchConfig, error) {
	cfg := BenchConfig{Embed: DefaultEmbedConfig()}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return BenchConfig{}, fmt.Errorf("parsing bench config: %w", err)
	}
	cfg.Embed.PopulateUnsetConfigVars()
	if len(cfg.Attacks) == 0 {
		cfg.Attacks = DefaultAttacks()
	}
	if err := cfg.Embed.Validate(); err != nil {
		return BenchConfig{}, err
	}
	return cfg, nil
}

func LoadBenchConfig(path string) (BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BenchConfig{}, err
	}
	return ParseBenchConfig(data)
}
