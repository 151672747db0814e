package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/trafico-pr/trafico-cli/internal/models"
	"github.com/trafico-pr/trafico-cli/internal/testutil"
)

func testDef() models.RouteDef {
	return models.RouteDef{
		Name:   "Normal",
		Origin: models.Coordinate{Lat: 18.269514, Lng: -66.039249},
		Dest:   models.Coordinate{Lat: 18.336549, Lng: -66.063951},
	}
}

func TestRenderRoute(t *testing.T) {
	var buf bytes.Buffer
	res := &models.RouteResult{
		Distance:    "27.0 km",
		Duration:    "25 mins",
		Arrival:     "2001-09-09 02:11:40",
		DurationSec: 1500,
	}

	RenderRoute(&buf, testDef(), res, RenderOptions{Colors: NewColors(ColorNever)})

	out := buf.String()
	testutil.AssertContains(t, out, "=== Normal ===")
	testutil.AssertContains(t, out, "Distance: 27.0 km")
	testutil.AssertContains(t, out, "Estimated travel time: 25 mins")
	testutil.AssertContains(t, out, "Estimated arrival time: 2001-09-09 02:11:40")
}

func TestRenderRoute_OmitsEmptyArrival(t *testing.T) {
	var buf bytes.Buffer
	res := &models.RouteResult{Distance: "27.0 km", Duration: "25 mins"}

	RenderRoute(&buf, testDef(), res, RenderOptions{})

	testutil.AssertTrue(t, !strings.Contains(buf.String(), "arrival"))
}

func TestRenderRouteError(t *testing.T) {
	var buf bytes.Buffer

	RenderRouteError(&buf, testDef(), errors.New("route error ZERO_RESULTS"), RenderOptions{})

	out := buf.String()
	testutil.AssertContains(t, out, "=== Normal ===")
	testutil.AssertContains(t, out, "Error: route error ZERO_RESULTS")
}

func TestBoardLine(t *testing.T) {
	res := &models.RouteResult{Distance: "27.0 km", Duration: "25 mins"}

	line := BoardLine(testDef(), res)

	testutil.AssertEqual(t, line, "NORMAL  27.0 KM  |  25 MINS")
}

func TestTruncateError(t *testing.T) {
	short := TruncateError(errors.New("dial tcp: timeout"), ErrorLineMax)
	testutil.AssertEqual(t, short, "DIAL TCP: TIMEOUT")

	long := TruncateError(errors.New(strings.Repeat("x", 200)), ErrorLineMax)
	testutil.AssertEqual(t, len(long), ErrorLineMax)
	testutil.AssertEqual(t, long, strings.ToUpper(strings.Repeat("x", ErrorLineMax)))
}
