package api

const (
	// BaseURL is the base URL for the Google Maps web service API
	BaseURL = "https://maps.googleapis.com"

	// EndpointDirections returns driving directions between two points
	// Required params: origin, destination, mode, departure_time, key
	// Optional params: traffic_model
	EndpointDirections = "/maps/api/directions/json"

	// StatusOK is the provider status for a successful directions lookup
	StatusOK = "OK"
)

// TrafficModels contains the traffic model selectors the provider accepts.
var TrafficModels = []string{
	"best_guess",
	"pessimistic",
	"optimistic",
}

// ValidTrafficModel reports whether s is an accepted traffic model selector.
func ValidTrafficModel(s string) bool {
	for _, m := range TrafficModels {
		if m == s {
			return true
		}
	}
	return false
}
