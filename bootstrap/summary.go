package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/weatherdi/component"
	"github.com/kbukum/weatherdi/di"
)

// Summary renders the startup overview shown by Run.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
}

// NewSummary creates a summary for a service.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{serviceName: serviceName, version: version}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Display writes the summary: described components, bindings and live health.
func (s *Summary) Display(w io.Writer, components *component.Registry, reg *di.Registry) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s %s started in %.2fs\n", s.serviceName, versionLabel(s.version), s.startupDuration.Seconds())

	if components != nil {
		var described []string
		for _, c := range components.All() {
			d, ok := c.(component.Describable)
			if !ok {
				continue
			}
			desc := d.Describe()
			name := desc.Name
			if name == "" {
				name = c.Name()
			}
			described = append(described, fmt.Sprintf("%s [%s] %s", name, desc.Type, desc.Details))
		}
		writeSection(&b, "Components", described)
	}

	if reg != nil {
		keys := reg.Keys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = string(k)
		}
		writeSection(&b, "Bindings", names)
	}

	if components != nil {
		health := components.HealthAll(context.Background())
		lines := make([]string, 0, len(health))
		for _, h := range health {
			line := h.Name + ": " + string(h.Status)
			if h.Message != "" {
				line += " (" + h.Message + ")"
			}
			lines = append(lines, line)
		}
		writeSection(&b, "Health", lines)
	}

	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d)\n", title, len(lines))
	for i, line := range lines {
		fmt.Fprintf(b, "   %s %s\n", treePrefix(i, len(lines)), line)
	}
}

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func versionLabel(v string) string {
	if v == "" {
		return "(dev)"
	}
	return "v" + strings.TrimPrefix(v, "v")
}
