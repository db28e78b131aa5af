package solc

import (
	"fmt"
	"regexp"
)

// Preset names a fixed bundle of compiler settings used to build external
// projects in several configurations.
type Preset string

const (
	PresetIRNoOptimize          Preset = "ir-no-optimize"
	PresetIROptimizeEVMOnly     Preset = "ir-optimize-evm-only"
	PresetIROptimizeEVMYul      Preset = "ir-optimize-evm+yul"
	PresetLegacyNoOptimize      Preset = "legacy-no-optimize"
	PresetLegacyOptimizeEVMOnly Preset = "legacy-optimize-evm-only"
	PresetLegacyOptimizeEVMYul  Preset = "legacy-optimize-evm+yul"
)

// AvailablePresets lists every known preset in canonical order.
var AvailablePresets = []Preset{
	PresetIRNoOptimize,
	PresetIROptimizeEVMOnly,
	PresetIROptimizeEVMYul,
	PresetLegacyNoOptimize,
	PresetLegacyOptimizeEVMOnly,
	PresetLegacyOptimizeEVMYul,
}

// Settings holds the compiler flags a preset resolves to.
type Settings struct {
	OptimizerEnabled bool
	ViaIR            bool
	YulDetails       bool
	EVMVersion       string
}

// SettingsFromPreset resolves a preset identifier plus an EVM version into
// concrete compiler settings.
func SettingsFromPreset(preset Preset, evmVersion string) (Settings, error) {
	base, ok := presetSettings[preset]
	if !ok {
		return Settings{}, fmt.Errorf("unknown compiler settings preset: %q", preset)
	}
	base.EVMVersion = evmVersion
	return base, nil
}

var presetSettings = map[Preset]Settings{
	PresetIRNoOptimize:          {OptimizerEnabled: false, ViaIR: true, YulDetails: false},
	PresetIROptimizeEVMOnly:     {OptimizerEnabled: true, ViaIR: true, YulDetails: false},
	PresetIROptimizeEVMYul:      {OptimizerEnabled: true, ViaIR: true, YulDetails: true},
	PresetLegacyNoOptimize:      {OptimizerEnabled: false, ViaIR: false, YulDetails: false},
	PresetLegacyOptimizeEVMOnly: {OptimizerEnabled: true, ViaIR: false, YulDetails: false},
	PresetLegacyOptimizeEVMYul:  {OptimizerEnabled: true, ViaIR: false, YulDetails: true},
}

// ParsePreset validates a preset identifier given on the command line.
func ParsePreset(s string) (Preset, error) {
	if _, ok := presetSettings[Preset(s)]; !ok {
		return "", fmt.Errorf("unknown compiler settings preset: %q", s)
	}
	return Preset(s), nil
}

// Runs of - or + are illegal in TOML profile names.
var profileNameSeparators = regexp.MustCompile(`[-+]+`)

// ProfileName sanitizes a preset identifier into a valid configuration
// profile name by collapsing each run of '-' or '+' into one underscore.
func ProfileName(preset Preset) string {
	return profileNameSeparators.ReplaceAllString(string(preset), "_")
}
