/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, expected it to contain version %q", s, Version)
	}
	if !strings.Contains(s, Commit) {
		t.Errorf("String() = %q, expected it to contain commit %q", s, Commit)
	}
	if !strings.Contains(s, Date) {
		t.Errorf("String() = %q, expected it to contain date %q", s, Date)
	}
}
