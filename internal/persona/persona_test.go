package persona

import (
	"encoding/json"
	"testing"
)

func TestBehaviorFor_Defaults(t *testing.T) {
	b := BehaviorFor("no_such_type")
	if b.Key != "skeptical" {
		t.Errorf("Key = %q, want %q (skeptical fallback)", b.Key, "skeptical")
	}

	b = BehaviorFor("")
	if b.Key != "skeptical" {
		t.Errorf("Key = %q, want %q for empty input", b.Key, "skeptical")
	}

	b = BehaviorFor("analytical")
	if b.Label != "Phân tích" {
		t.Errorf("Label = %q, want %q", b.Label, "Phân tích")
	}
}

func TestBehaviorOrder_CoversAllBehaviors(t *testing.T) {
	if len(BehaviorOrder) != len(Behaviors) {
		t.Fatalf("BehaviorOrder length = %d, want %d", len(BehaviorOrder), len(Behaviors))
	}
	for _, key := range BehaviorOrder {
		if _, ok := Behaviors[key]; !ok {
			t.Errorf("BehaviorOrder key %q not in Behaviors", key)
		}
	}
}

func TestInfoFor_UnknownOmitted(t *testing.T) {
	if _, ok := InfoFor("martian"); ok {
		t.Error("InfoFor(martian) ok = true, want false")
	}
	info, ok := InfoFor("friendly")
	if !ok || info.Label != "Thân thiện" {
		t.Errorf("InfoFor(friendly) = %+v, %v", info, ok)
	}
}

func TestTrustFor(t *testing.T) {
	if _, ok := TrustFor(0); ok {
		t.Error("TrustFor(0) ok = true, want false (unset)")
	}

	lvl, ok := TrustFor(5)
	if !ok || lvl.Label != "Cao" {
		t.Errorf("TrustFor(5) = %+v, %v", lvl, ok)
	}

	// Out-of-range falls back to the neutral profile
	lvl, ok = TrustFor(9)
	if !ok || lvl.Label != "Trung bình" {
		t.Errorf("TrustFor(9) = %+v, %v, want level-3 fallback", lvl, ok)
	}
}

func TestDefaultObjectionSamples(t *testing.T) {
	samples := DefaultObjectionSamples(2)
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if samples[0] != "Tôi không có tiền đóng bảo hiểm đâu." {
		t.Errorf("samples[0] = %q", samples[0])
	}
	if samples[1] != "Tôi đã có bảo hiểm rồi." {
		t.Errorf("samples[1] = %q", samples[1])
	}
}

func TestCustomer_DisplayName(t *testing.T) {
	c := &Customer{Name: "Anh Minh"}
	if got := c.DisplayName(); got != "Anh Minh" {
		t.Errorf("DisplayName() = %q, want %q", got, "Anh Minh")
	}

	// basicInfo.name wins over the flat field
	c = &Customer{Name: "flat", BasicInfo: map[string]any{"name": "Chị Lan"}}
	if got := c.DisplayName(); got != "Chị Lan" {
		t.Errorf("DisplayName() = %q, want %q", got, "Chị Lan")
	}

	c = &Customer{}
	if got := c.DisplayName(); got != "Khách hàng" {
		t.Errorf("DisplayName() = %q, want placeholder", got)
	}
	if c.HasName() {
		t.Error("HasName() = true for empty customer")
	}
}

func TestCustomer_TrustLevelInt(t *testing.T) {
	c := &Customer{TrustLevel: " 4 "}
	if got := c.TrustLevelInt(); got != 4 {
		t.Errorf("TrustLevelInt() = %d, want 4", got)
	}
	c = &Customer{TrustLevel: "high"}
	if got := c.TrustLevelInt(); got != 0 {
		t.Errorf("TrustLevelInt() = %d, want 0 for non-numeric", got)
	}
}

func TestAdvisor_ExperienceText(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, ""},
		{6, "6 tháng"},
		{12, "1 năm"},
		{30, "2 năm 6 tháng"},
	}
	for _, tt := range tests {
		a := &Advisor{ExperienceMonths: tt.months}
		if got := a.ExperienceText(); got != tt.want {
			t.Errorf("ExperienceText(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestTemplates_ValidJSON(t *testing.T) {
	for name, tmpl := range map[string]string{"mass_market": MassMarketTemplate, "hnw": HNWTemplate} {
		var v map[string]any
		if err := json.Unmarshal([]byte(tmpl), &v); err != nil {
			t.Errorf("%s template is not valid JSON: %v", name, err)
		}
		if _, ok := v["basicInfo"]; !ok {
			t.Errorf("%s template missing basicInfo", name)
		}
	}
}
