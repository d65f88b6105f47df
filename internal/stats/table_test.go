package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Type", "Workouts", "Calories"}
	rows := [][]string{
		{"Running", "2", "1059.750"},
		{"Swimming", "12", "336.000"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Type     Workouts Calories" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Running         2 1059.750" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Swimming       12  336.000" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableCountsCyrillicByWidth(t *testing.T) {
	lines := formatTable([]string{"Тип", "N"}, [][]string{{"Бег", "1"}, {"Плавание", "2"}}, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Тип      N" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Бег      1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
