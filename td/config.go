package td

// Config configures the temporal-difference learner.
type Config struct {
	// Alpha is the learning rate. Between 0 (exclusive) and 1
	Alpha float64
	// ExploreRatio is the probability of a uniformly random move during training. Between 0 and 1
	ExploreRatio float64

	// LearnFromPlay keeps updating values during live play. Off by default: the policy is
	// frozen once training completes.
	LearnFromPlay bool

	ReportInterval int // log progress every ReportInterval episodes. 0 disables progress logs
}

// DefaultConfig returns the learning rate and explore ratio the engine trains with by default.
func DefaultConfig() Config {
	return Config{
		Alpha:          0.1,
		ExploreRatio:   0.1,
		ReportInterval: 1000,
	}
}

// IsValid returns true if alpha is in (0, 1], the explore ratio in [0, 1] and the interval not negative.
func (c Config) IsValid() bool {
	return c.Alpha > 0 && c.Alpha <= 1 &&
		c.ExploreRatio >= 0 && c.ExploreRatio <= 1 &&
		c.ReportInterval >= 0
}
