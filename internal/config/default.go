package config

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-tools-mcp/internal/key"
)

// Field is one registered configuration setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

// Fields returns the registered fields sorted by key.
func Fields() []Field {
	fields := lo.Values(Default)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.LogLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogJSON, false, "Use json format for logs")
	register(key.RandomSeed, 0, "Seed for color_random. 0 draws from the process-wide generator")
	register(key.PaletteCount, 5, "Default number of colors returned by image_palette")
	register(key.CliColored, true, "Enable colored CLI help and inspect output")
}
