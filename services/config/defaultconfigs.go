package config

// -----------------------------------------------------------------------------
// Compiled-in board configurations
//
// Key: board ID (the firmware's build-time board name)
// Val: tweaks applied on top of Default
// -----------------------------------------------------------------------------

var boardConfigs = map[string]func(*Config){
	"pico": nil,
	"pico-bme280": func(c *Config) {
		c.Source.Kind = SourceBME280
	},
	"sim": func(c *Config) {
		c.Log.Debug = true
	},
}

// BoardLookup allows overriding how board configs are resolved.
var BoardLookup = func(board string) (func(*Config), bool) {
	f, ok := boardConfigs[board]
	return f, ok
}

// ForBoard returns Default with the named board's tweaks applied.
func ForBoard(board string) (*Config, bool) {
	tweak, ok := BoardLookup(board)
	if !ok {
		return nil, false
	}
	cfg := Default()
	if tweak != nil {
		tweak(cfg)
	}
	return cfg, true
}
