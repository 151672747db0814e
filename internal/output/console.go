package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/trafico-pr/trafico-cli/internal/models"
)

// ErrorLineMax bounds the length of rendered error lines.
const ErrorLineMax = 80

// RenderOptions configures console rendering
type RenderOptions struct {
	Colors *Colors
}

func (o RenderOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderRoute renders one route section: a header followed by distance,
// duration and (when available) arrival lines.
func RenderRoute(w io.Writer, def models.RouteDef, res *models.RouteResult, opts RenderOptions) {
	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("=== %s ===", def.Name))
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Label("Distance:"), c.Value("%s", res.Distance))
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Label("Estimated travel time:"), c.Value("%s", res.Duration))
	if res.Arrival != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Label("Estimated arrival time:"), c.Arrival("%s", res.Arrival))
	}
}

// RenderRouteError renders a failed route section. The caller continues with
// the next route.
func RenderRouteError(w io.Writer, def models.RouteDef, err error, opts RenderOptions) {
	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("=== %s ===", def.Name))
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Label("Error:"), c.Error("%s", err))
}

// BoardLine builds the single LED display line for a route, upper-cased for
// the amber-sign aesthetic.
func BoardLine(def models.RouteDef, res *models.RouteResult) string {
	return strings.ToUpper(fmt.Sprintf("%s  %s  |  %s", def.Name, res.Distance, res.Duration))
}

// TruncateError formats an error for display, upper-cased and truncated to
// at most max characters.
func TruncateError(err error, max int) string {
	s := strings.ToUpper(err.Error())
	if len(s) > max {
		s = s[:max]
	}
	return s
}
