package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config carries the run-time tunables of the simulator.
type Config struct {
	SampleRate int // Hz, curve sampling frequency
	Workers    int // concurrent case workers, 0 means one per CPU
	PushStep   int // stride when downsampling curves for push frames

	MaxFlowrates   int
	MaxFoamVolumes int

	OutDir string // where figures are written
	Addr   string // websocket listen address
}

func defaultConfig() Config {
	return Config{
		SampleRate:     20,
		Workers:        0,
		PushStep:       5,
		MaxFlowrates:   6,
		MaxFoamVolumes: 4,
		OutDir:         "out",
		Addr:           ":9000",
	}
}

// LoadConfig reads the ini file at path, falling back to defaults for
// missing keys or a missing file.
func LoadConfig(path string) Config {
	cfg := defaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("config file not readable, using defaults")
		return cfg
	}
	loadCfg(file, &cfg)
	return cfg
}

func loadCfg(file *ini.File, cfg *Config) {
	calc := file.Section("calculator")
	cfg.SampleRate = calc.Key("SampleRate").MustInt(cfg.SampleRate)
	cfg.Workers = calc.Key("Workers").MustInt(cfg.Workers)
	cfg.PushStep = calc.Key("PushStep").MustInt(cfg.PushStep)
	cfg.MaxFlowrates = calc.Key("MaxFlowrates").MustInt(cfg.MaxFlowrates)
	cfg.MaxFoamVolumes = calc.Key("MaxFoamVolumes").MustInt(cfg.MaxFoamVolumes)
	cfg.OutDir = file.Section("output").Key("Dir").MustString(cfg.OutDir)
	cfg.Addr = file.Section("server").Key("Addr").MustString(cfg.Addr)
	if cfg.SampleRate <= 0 {
		log.WithField("SampleRate", cfg.SampleRate).Warn("invalid sample rate, using 20 Hz")
		cfg.SampleRate = 20
	}
	if cfg.PushStep <= 0 {
		cfg.PushStep = 1
	}
}
