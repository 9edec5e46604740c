package domain

// Progress mode names accepted by the PRESS_PROGRESS setting.
const (
	// ProgressPlain streams page status lines through the logger.
	ProgressPlain = "plain"
	// ProgressOTel emits OpenTelemetry spans for each page render.
	ProgressOTel = "otel"
	// ProgressOff disables progress reporting.
	ProgressOff = "off"
)

// Settings are the runtime knobs read from the environment and the optional
// settings file. They configure the tool, not the site; the site itself is
// described by the manifest.
type Settings struct {
	// Jobs is the maximum number of pages rendered concurrently.
	Jobs int `mapstructure:"jobs"`

	// Progress selects how page render progress is reported.
	Progress string `mapstructure:"progress"`

	// StateDir overrides the default state directory under the site root.
	StateDir string `mapstructure:"state_dir"`
}
