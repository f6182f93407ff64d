package sculpt

import "testing"

func TestGeneratedMeshName(t *testing.T) {
	got := GeneratedMeshName(1234)
	want := MeshNamePrefix + "1234"
	if got != want {
		t.Errorf("GeneratedMeshName(1234) = %q, want %q", got, want)
	}
}

func TestParseGeneratedName(t *testing.T) {
	tests := []struct {
		name   string
		wantID int64
		wantOK bool
	}{
		{MeshNamePrefix + "1234", 1234, true},
		{MeshNamePrefix + "1", 1, true},
		{MeshNamePrefix + "0", 0, true},
		{"Sphere", 0, false},
		{"", 0, false},
		{MeshNamePrefix, 0, false},
		{MeshNamePrefix + "abc", 0, false},
		{MeshNamePrefix + "12x", 0, false},
		{MeshNamePrefix + "-1", 0, false},
		{"prefix" + MeshNamePrefix + "5", 0, false},
	}

	for _, tt := range tests {
		gotID, gotOK := ParseGeneratedName(tt.name)
		if gotID != tt.wantID || gotOK != tt.wantOK {
			t.Errorf("ParseGeneratedName(%q) = %d, %v; want %d, %v",
				tt.name, gotID, gotOK, tt.wantID, tt.wantOK)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 99999} {
		gotID, ok := ParseGeneratedName(GeneratedMeshName(id))
		if !ok || gotID != id {
			t.Errorf("round trip of id %d = %d, %v", id, gotID, ok)
		}
	}
}
