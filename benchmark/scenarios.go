package benchmark

// ScenarioBuilder helps build run configurations with a fluent API.
type ScenarioBuilder struct {
	config Config
}

// NewScenarioBuilder creates a builder seeded with DefaultConfig.
func NewScenarioBuilder() *ScenarioBuilder {
	return &ScenarioBuilder{config: DefaultConfig()}
}

// WithTrials sets how many trials are averaged per size.
func (sb *ScenarioBuilder) WithTrials(trials int) *ScenarioBuilder {
	sb.config.Trials = trials
	return sb
}

// WithSizes sets the swept size range.
func (sb *ScenarioBuilder) WithSizes(minSize, maxSize, step int) *ScenarioBuilder {
	sb.config.MinSize = minSize
	sb.config.MaxSize = maxSize
	sb.config.Step = step
	return sb
}

// WithOutputDir sets the directory result files are written to.
func (sb *ScenarioBuilder) WithOutputDir(dir string) *ScenarioBuilder {
	sb.config.OutputDir = dir
	return sb
}

// WithLogLevel sets the diagnostic log level.
func (sb *ScenarioBuilder) WithLogLevel(level string) *ScenarioBuilder {
	sb.config.LogLevel = level
	return sb
}

// Build returns the configured run parameters.
func (sb *ScenarioBuilder) Build() Config {
	return sb.config
}
