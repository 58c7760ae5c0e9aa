package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlexInt
	}{
		{"number", `3`, 3},
		{"quoted number", `"3"`, 3},
		{"quoted decimal truncates", `"3.9"`, 3},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"non-numeric string", `"abc"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlexIntRejectsNonScalar(t *testing.T) {
	var got FlexInt
	if err := json.Unmarshal([]byte(`{"id":1}`), &got); err == nil {
		t.Error("expected an error for an object token")
	}
}

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlexFloat
	}{
		{"number", `150.50`, 150.50},
		{"quoted number", `"150.50"`, 150.50},
		{"integer string", `"200"`, 200},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexFloat
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlexIntMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(Staff{StaffID: 1, Name: "Jane Doe", DepartmentID: 2})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["department_id"]) != "2" {
		t.Errorf("department_id = %s, want bare 2", raw["department_id"])
	}
}
