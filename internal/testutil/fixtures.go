package testutil

// SampleDirectionsResponse is a successful directions response with a
// traffic-aware duration.
const SampleDirectionsResponse = `{
	"status": "OK",
	"routes": [
		{
			"summary": "PR-52 N",
			"legs": [
				{
					"distance": {"text": "27.0 km", "value": 27012},
					"duration": {"text": "21 mins", "value": 1260},
					"duration_in_traffic": {"text": "25 mins", "value": 1500}
				}
			]
		}
	]
}`

// SampleDirectionsNoTraffic is a successful response without a traffic-aware
// duration field.
const SampleDirectionsNoTraffic = `{
	"status": "OK",
	"routes": [
		{
			"summary": "PR-1 N",
			"legs": [
				{
					"distance": {"text": "31.4 km", "value": 31400},
					"duration": {"text": "33 mins", "value": 1980}
				}
			]
		}
	]
}`

// SampleDirectionsZeroResults is the provider's answer when no route exists
// between the requested points.
const SampleDirectionsZeroResults = `{
	"status": "ZERO_RESULTS",
	"routes": []
}`

// SampleDirectionsDenied is the provider's answer for a rejected API key.
const SampleDirectionsDenied = `{
	"status": "REQUEST_DENIED",
	"error_message": "The provided API key is invalid.",
	"routes": []
}`
