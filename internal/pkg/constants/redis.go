package constants

// Redis key formats
const (
	// Volunteer Service
	KeyVolunteerPhone = "volunteer:phone:%s" // Format: volunteer:phone:{last_10_digits}
)

// Rate limiter key format: rate:{prefix}:{route}:{client}
const KeyRateLimit = "rate:%s:%s:%s"
