package importer

import (
	"testing"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

func TestStatusFromLabel(t *testing.T) {
	extra := map[string]string{"đã xong": app.StatusCompleted}

	cases := []struct {
		input    string
		expected string
	}{
		{"Hoàn thành", app.StatusCompleted},
		{"  đang thực hiện  ", app.StatusInProgress},
		{"Quá hạn", app.StatusOverdue},
		{"completed", app.StatusCompleted},
		{"đã xong", app.StatusCompleted}, // из config.json
		{"không rõ", app.StatusPending},  // незнакомая метка -> default
		{"", app.StatusPending},
	}

	for _, c := range cases {
		if result := StatusFromLabel(c.input, extra); result != c.expected {
			t.Errorf("StatusFromLabel(%q) == %q, want %q", c.input, result, c.expected)
		}
	}
}

func TestPriorityFromLabel(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Cao", app.PriorityHigh},
		{"thấp", app.PriorityLow},
		{"Trung bình", app.PriorityMedium},
		{"HIGH", app.PriorityHigh},
		{"urgent", app.PriorityMedium}, // незнакомая метка -> default
		{"", app.PriorityMedium},
	}

	for _, c := range cases {
		if result := PriorityFromLabel(c.input, nil); result != c.expected {
			t.Errorf("PriorityFromLabel(%q) == %q, want %q", c.input, result, c.expected)
		}
	}
}

func TestDueDateFromRaw(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"45000", "2023-03-15"}, // Excel serial
		{"25/12/2024", "2024-12-25"},
		{"5/1/2025", "2025-01-05"},
		{"2024-12-25T10:00:00", "2024-12-25"},
		{"2024-12-25 10:00:00", "2024-12-25"},
		{"2024-12-25", "2024-12-25"},
		{"garbage", ""},
		{"32/13/2024", ""},
		{"", ""},
	}

	for _, c := range cases {
		if result := DueDateFromRaw(c.input); result != c.expected {
			t.Errorf("DueDateFromRaw(%q) == %q, want %q", c.input, result, c.expected)
		}
	}
}
