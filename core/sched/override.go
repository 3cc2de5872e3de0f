// File: core/sched/override.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import (
	"strconv"
	"strings"

	"github.com/momentics/hioload-sched/api"
	"github.com/sirupsen/logrus"
)

// overridePriority validates o against [lo, hi]. Absent overrides are
// ignored silently; malformed or out of range ones with a diagnostic.
func overridePriority(o api.PriorityOverride, lo, hi int, log logrus.FieldLogger) (int, bool) {
	if !o.Present {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(o.Raw))
	if err != nil || v < lo || v > hi {
		log.WithField("value", o.Raw).Warnf("%s should be between %d and %d", o.Name, lo, hi)
		return 0, false
	}
	return v, true
}
