package config

// Presets capture the iteration depths worth looking at per system. The
// "max" preset matches the recommended bound carried by each catalogued
// definition.
var Presets = map[string]map[string]*Config{
	"koch": {
		"coarse": {System: "koch", Iterations: 1},
		"detail": {System: "koch", Iterations: 3},
		"max":    {System: "koch", Iterations: 5},
	},
	"sierpinski": {
		"coarse": {System: "sierpinski", Iterations: 2},
		"detail": {System: "sierpinski", Iterations: 5},
		"max":    {System: "sierpinski", Iterations: 8},
	},
	"cesaro": {
		"coarse": {System: "cesaro", Iterations: 1},
		"detail": {System: "cesaro", Iterations: 3},
		"max":    {System: "cesaro", Iterations: 5},
	},
	"koch-quad": {
		"coarse": {System: "koch-quad", Iterations: 1},
		"detail": {System: "koch-quad", Iterations: 2},
		"max":    {System: "koch-quad", Iterations: 4},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
