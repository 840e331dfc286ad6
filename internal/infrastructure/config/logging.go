package config

// LoggingConfig controls the zap sink behind the application logger
type LoggingConfig struct {
	// debug shows every solver candidate; info shows one line per iteration
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// json for machine consumption, text for a console
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// stdout, stderr or file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	IncludeCaller bool `mapstructure:"include_caller"`

	// Throttle repeated debug lines such as per-candidate solver output
	SampleCandidates bool `mapstructure:"sample_candidates"`
}
