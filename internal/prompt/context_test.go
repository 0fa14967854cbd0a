package prompt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
)

func baseInput() ContextInput {
	return ContextInput{
		Advisor:  &persona.Advisor{Name: "Lan"},
		Customer: &persona.Customer{Name: "Minh", Age: "35"},
		FlowType: flows.FlowNewCustomer,
		Segment:  flows.SegmentMassMarket,
	}
}

func TestContext_Deterministic(t *testing.T) {
	in := ContextInput{
		Advisor: &persona.Advisor{Name: "Lan", ExperienceMonths: 18},
		Customer: &persona.Customer{
			Name: "Minh", Age: "35", Occupation: "Kỹ sư",
			Personality: "analytical", TrustLevel: "2",
		},
		FlowType:       flows.FlowECM,
		Segment:        flows.SegmentHNW,
		SelectedStages: []string{"policy_review", "closing_referral"},
	}

	first := Context(in)
	second := Context(in)
	if first != second {
		t.Fatal("Context() output differs across identical calls")
	}
}

func TestContext_MassMarketScenario(t *testing.T) {
	out := Context(baseInput())

	if !strings.Contains(out, "- Tên/Xưng hô: Minh") {
		t.Error("missing customer name line")
	}
	if !strings.Contains(out, "- Tuổi: 35") {
		t.Error("missing customer age line")
	}

	// Every stage of the 7-stage flow is marked as included
	for i, s := range flows.NewCustomerStages {
		if !strings.Contains(out, "✅ "+strconv.Itoa(i+1)+". "+s.Name) {
			t.Errorf("stage %q not marked included", s.Name)
		}
	}
	if strings.Contains(out, "⬜") {
		t.Error("found skip marker with empty selection")
	}

	// No HNW-only labels for the mass-market segment
	for _, label := range []string{"Tài sản ước tính", "Chủ doanh nghiệp", "Loại hình kinh doanh", "Bảo hiểm hiện có"} {
		if strings.Contains(out, label) {
			t.Errorf("mass-market output contains HNW label %q", label)
		}
	}
}

func TestContext_HNWNetWorthLine(t *testing.T) {
	in := baseInput()
	in.Segment = flows.SegmentHNW
	in.Customer.NetWorth = "20-50 tỷ"

	out := Context(in)
	if !strings.Contains(out, "- Tài sản ước tính: 20-50 tỷ") {
		t.Error("missing net-worth line for HNW segment")
	}

	// Omitting netWorth omits the line entirely
	in.Customer.NetWorth = ""
	out = Context(in)
	if strings.Contains(out, "Tài sản ước tính") {
		t.Error("net-worth label rendered without a value")
	}
}

func TestContext_EmptyFieldsOmitted(t *testing.T) {
	out := Context(baseInput())

	for _, label := range []string{"Nghề nghiệp", "Thu nhập", "Số con", "Người giới thiệu"} {
		if strings.Contains(out, label) {
			t.Errorf("label %q rendered for empty field", label)
		}
	}
	if strings.Contains(out, "undefined") || strings.Contains(out, "<nil>") {
		t.Error("placeholder leaked into output")
	}
}

func TestContext_StageSelection(t *testing.T) {
	in := baseInput()
	in.SelectedStages = []string{"closing", "objection_handling"}

	out := Context(in)

	if !strings.Contains(out, "✅ 5. Xử lý từ chối") {
		t.Error("selected stage objection_handling not marked included")
	}
	if !strings.Contains(out, "✅ 6. Chốt sale") {
		t.Error("selected stage closing not marked included")
	}
	if !strings.Contains(out, "⬜ 1. Mở đầu & Tạo thiện cảm") {
		t.Error("unselected stage not marked skipped")
	}

	// Start stage is the first selected stage in flow order, not in
	// selection order
	if !strings.Contains(out, "### 🎯 Bắt đầu từ: Xử lý từ chối") {
		t.Error("start stage should be objection_handling (first in flow order)")
	}
}

func TestContext_StaleSelectionFallsBackToFirstStage(t *testing.T) {
	in := baseInput()
	// Stage ids from the ECM flow do not exist in new_customer
	in.SelectedStages = []string{"policy_review", "re_engagement"}

	out := Context(in)
	if !strings.Contains(out, "### 🎯 Bắt đầu từ: Mở đầu & Tạo thiện cảm") {
		t.Error("stale selection should fall back to the flow's first stage")
	}
}

func TestContext_PersonalityAndTrustSections(t *testing.T) {
	in := baseInput()
	in.Customer.Personality = "skeptical"
	in.Customer.TrustLevel = "2"

	out := Context(in)
	if !strings.Contains(out, "### 🎭 Tính cách: Hoài nghi") {
		t.Error("missing personality section")
	}
	if !strings.Contains(out, "### 🤝 Mức độ tin tưởng TVV: 2/5 - Thấp") {
		t.Error("missing trust section")
	}

	// Unknown personality silently omits the section
	in.Customer.Personality = "martian"
	in.Customer.TrustLevel = ""
	out = Context(in)
	if strings.Contains(out, "### 🎭 Tính cách:") {
		t.Error("personality section rendered for unknown type")
	}
	if strings.Contains(out, "### 🤝 Mức độ tin tưởng") {
		t.Error("trust section rendered with no trust level")
	}
}

func TestContext_ECMFlowLabel(t *testing.T) {
	in := baseInput()
	in.FlowType = flows.FlowECM

	out := Context(in)
	if !strings.Contains(out, "## 📈 LUỒNG TƯ VẤN: 🔄 ECM (Khách hàng hiện hữu)") {
		t.Error("missing ECM flow label")
	}
	for _, s := range flows.ECMStages {
		if !strings.Contains(out, s.Name) {
			t.Errorf("ECM stage %q missing", s.Name)
		}
	}
}
