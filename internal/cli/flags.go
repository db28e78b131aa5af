package cli

import "github.com/veniger/solidity/internal/config"

// Flags holds command-line flags
type Flags struct {
	SolcBinaryType string
	SolcBinaryPath string
	SolcVersion    string
	Run            []string
	RunAll         bool
	TestDir        string
	Presets        []string
	EVMVersion     string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SolcBinaryType: f.SolcBinaryType,
		SolcBinaryPath: f.SolcBinaryPath,
		SolcVersion:    f.SolcVersion,
		Run:            f.Run,
		RunAll:         f.RunAll,
		TestDir:        f.TestDir,
		Presets:        f.Presets,
		EVMVersion:     f.EVMVersion,
	}
}
