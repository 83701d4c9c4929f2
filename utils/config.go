package utils

import "coursely/config"

// IsProduction reports whether the app runs with the production profile.
func IsProduction() bool {
	return config.IsProduction()
}
