package prompt

import (
	"strings"
	"testing"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
)

func TestCustomerGeneration_SegmentTemplates(t *testing.T) {
	mass := CustomerGeneration("Anh Minh, 35 tuổi, kỹ sư", flows.SegmentMassMarket, flows.FlowNewCustomer)
	if !strings.Contains(mass, "khách hàng đại chúng") {
		t.Error("mass-market prompt missing segment label")
	}
	if !strings.Contains(mass, `"monthlyIncome"`) {
		t.Error("mass-market prompt missing mass-market template field")
	}

	hnw := CustomerGeneration("Chủ doanh nghiệp bất động sản", flows.SegmentHNW, flows.FlowNewCustomer)
	if !strings.Contains(hnw, "cao cấp (HNW)") {
		t.Error("HNW prompt missing segment label")
	}
	if !strings.Contains(hnw, `"estimatedNetWorth"`) {
		t.Error("HNW prompt missing HNW template field")
	}
}

func TestCustomerGeneration_IncludesDescriptionAndPersonalities(t *testing.T) {
	out := CustomerGeneration("Chị Lan bán hàng online", flows.SegmentMassMarket, flows.FlowNewCustomer)

	if !strings.Contains(out, `"Chị Lan bán hàng online"`) {
		t.Error("description not embedded")
	}
	if !strings.Contains(out, "- Hoài nghi: ") {
		t.Error("personality list missing skeptical entry")
	}
	if !strings.Contains(out, "- Thiếu kiên nhẫn: ") {
		t.Error("personality list missing impatient entry")
	}
}

func TestParseCustomerResponse_PlainJSON(t *testing.T) {
	c, err := ParseCustomerResponse(`{"personalityType": "emotional", "basicInfo": {"name": "Chị Hoa", "age": 42}, "hiddenNeeds": ["Bảo vệ con"]}`)
	if err != nil {
		t.Fatalf("ParseCustomerResponse() error = %v", err)
	}
	if c.PersonalityType != "emotional" {
		t.Errorf("PersonalityType = %q, want %q", c.PersonalityType, "emotional")
	}
	if c.DisplayName() != "Chị Hoa" {
		t.Errorf("DisplayName() = %q, want %q", c.DisplayName(), "Chị Hoa")
	}
	if len(c.HiddenNeeds) != 1 {
		t.Errorf("HiddenNeeds = %v", c.HiddenNeeds)
	}
}

func TestParseCustomerResponse_FencedJSON(t *testing.T) {
	for _, fence := range []string{"```json", "```"} {
		raw := fence + "\n" + `{"personalityType": "skeptical"}` + "\n```"
		c, err := ParseCustomerResponse(raw)
		if err != nil {
			t.Fatalf("ParseCustomerResponse(%q) error = %v", fence, err)
		}
		if c.PersonalityType != "skeptical" {
			t.Errorf("PersonalityType = %q", c.PersonalityType)
		}
	}
}

func TestParseCustomerResponse_Malformed(t *testing.T) {
	_, err := ParseCustomerResponse("Xin lỗi, tôi không thể tạo JSON.")
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}
