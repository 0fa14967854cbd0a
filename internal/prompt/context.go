// Package prompt assembles the text documents handed to Gemini: the large
// context prompt for external chat products, the roleplay system prompt,
// the transcript-review prompt, and the persona-generation prompt. Every
// builder is a pure function: identical inputs produce byte-identical
// output, optional fields are omitted rather than rendered empty, and
// unresolvable lookups drop their section instead of erroring.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
)

// ContextInput carries everything the context prompt renders.
type ContextInput struct {
	Advisor        *persona.Advisor
	Customer       *persona.Customer
	FlowType       flows.FlowType
	Segment        flows.Segment
	SelectedStages []string // empty means every stage is included
}

// Context builds the full roleplay context document for pasting into an
// external AI chat product.
func Context(in ContextInput) string {
	stages := flows.StagesFor(in.FlowType)
	isHNW := in.Segment == flows.SegmentHNW
	customer := in.Customer
	advisor := in.Advisor
	if customer == nil {
		customer = &persona.Customer{}
	}
	if advisor == nil {
		advisor = &persona.Advisor{}
	}

	var customerInfo []string
	addLine := func(label, value string) {
		if value != "" {
			customerInfo = append(customerInfo, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	addLine("Tên/Xưng hô", customer.Name)
	addLine("Tuổi", customer.Age)
	addLine("Giới tính", customer.Gender)
	addLine("Nghề nghiệp", customer.Occupation)
	addLine("Thu nhập", customer.IncomeRange)
	addLine("Tình trạng hôn nhân", customer.MaritalStatus)
	addLine("Số con", customer.Children)
	addLine("Tuổi các con", customer.ChildrenAges)
	addLine("Người phụ thuộc", customer.Dependents)

	if isHNW {
		addLine("Tài sản ước tính", customer.NetWorth)
		addLine("Chủ doanh nghiệp", customer.BusinessOwner)
		addLine("Loại hình kinh doanh", customer.BusinessType)
		addLine("Bảo hiểm hiện có", customer.ExistingInsurance)
	}

	var contextInfo []string
	addContext := func(label, value string) {
		if value != "" {
			contextInfo = append(contextInfo, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	addContext("Hình thức gặp", customer.MeetingType)
	addContext("Tính chất cuộc gặp", customer.MeetingNature)
	addContext("Thời gian KH có", customer.TimeAvailable)
	addContext("Mối quan hệ với TVV", customer.Relationship)
	addContext("Người giới thiệu", customer.Referrer)
	addContext("Hoàn cảnh đặc biệt", customer.Circumstances)
	addContext("Nhu cầu đã biết", customer.KnownNeeds)

	personalityInfo, hasPersonality := persona.Info{}, false
	if customer.Personality != "" {
		personalityInfo, hasPersonality = persona.InfoFor(customer.Personality)
	}
	personalitySection := ""
	if hasPersonality {
		personalitySection = fmt.Sprintf(`
### 🎭 Tính cách: %s
%s

**Hành vi đặc trưng:**
%s`, personalityInfo.Label, personalityInfo.Description, bulletList(personalityInfo.Behaviors))
	}

	trustData, hasTrust := persona.TrustLevel{}, false
	if customer.TrustLevel != "" {
		trustData, hasTrust = persona.TrustFor(customer.TrustLevelInt())
	}
	trustSection := ""
	if hasTrust {
		trustSection = fmt.Sprintf(`
### 🤝 Mức độ tin tưởng TVV: %s/5 - %s
%s

**Cách thể hiện:**
%s`, customer.TrustLevel, trustData.Label, trustData.Description, bulletList(trustData.Behaviors))
	}

	var advisorInfo []string
	addAdvisor := func(label, value string) {
		if value != "" {
			advisorInfo = append(advisorInfo, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	addAdvisor("Tên", advisor.Name)
	addAdvisor("Giới tính", advisor.Gender)
	addAdvisor("Tuổi", advisor.Age)
	addAdvisor("Kinh nghiệm", advisor.ExperienceText())
	addAdvisor("Tính cách", advisor.Personality)
	addAdvisor("Thế mạnh", advisor.Strengths)
	addAdvisor("Đang cải thiện", advisor.Improvements)

	selected := make(map[string]bool, len(in.SelectedStages))
	for _, id := range in.SelectedStages {
		selected[id] = true
	}
	includeAll := len(in.SelectedStages) == 0

	stageLines := make([]string, 0, len(stages))
	for i, s := range stages {
		marker := "⬜"
		if includeAll || selected[s.ID] {
			marker = "✅"
		}
		stageLines = append(stageLines, fmt.Sprintf("%s %d. %s: %s", marker, i+1, s.Name, s.Description))
	}

	// Start stage: the first stage in flow order whose id was selected.
	// No selection, or a selection with no matching stage, starts at the
	// flow's first stage.
	startStage := stages[0]
	if !includeAll {
		for _, s := range stages {
			if selected[s.ID] {
				startStage = s
				break
			}
		}
	}

	customerBlock := "(Thông tin cơ bản chưa được cung cấp - BẠN HÃY TỰ TẠO chi tiết hợp lý)"
	if len(customerInfo) > 0 {
		customerBlock = strings.Join(customerInfo, "\n")
	}
	contextBlock := "(Bối cảnh chưa rõ - hãy tự tạo hợp lý)"
	if len(contextInfo) > 0 {
		contextBlock = strings.Join(contextInfo, "\n")
	}
	advisorBlock := "(Tư vấn viên mới)"
	if len(advisorInfo) > 0 {
		advisorBlock = strings.Join(advisorInfo, "\n")
	}

	segmentBlock := "👥 Mass Market - Khách hàng phổ thông với nhu cầu bảo vệ gia đình, tiết kiệm cho con"
	if isHNW {
		segmentBlock = "💎 High-Net-Worth (HNW) - Khách hàng cao cấp với nhu cầu phức tạp về bảo vệ tài sản, thừa kế, thuế"
	}

	flowLabel := "🆕 Khách hàng Mới"
	if in.FlowType == flows.FlowECM {
		flowLabel = "🔄 ECM (Khách hàng hiện hữu)"
	}

	rejectionBlock := `- "Để anh/em suy nghĩ thêm đã"
- "Tháng này hơi khó khăn tài chính"
- "Để hỏi ý kiến vợ/chồng anh/em đã"
- "Anh/Em chưa thấy cần thiết lắm"
- "Bảo hiểm phức tạp quá, anh/em không hiểu"`
	if hasPersonality {
		rejectionBlock = persona.Rejections(customer.Personality)
	}

	trustDisplay := customer.TrustLevel
	if trustDisplay == "" {
		trustDisplay = "3"
	}
	moodDisplay := "Hơi hoài nghi, cần được thuyết phục"
	if hasPersonality {
		moodDisplay = personalityInfo.Label
	}
	advisorName := advisor.Name
	if advisorName == "" {
		advisorName = "TVV"
	}

	return fmt.Sprintf(`# 🎭 ROLEPLAY TƯ VẤN BẢO HIỂM AIA

## VAI TRÒ CỦA BẠN
Bạn là một KHÁCH HÀNG tiềm năng đang được tư vấn viên bảo hiểm nhân thọ AIA tư vấn.
- Bạn KHÔNG PHẢI là tư vấn viên
- Bạn KHÔNG được tự tư vấn cho bản thân
- Bạn đóng vai khách hàng với tính cách và tâm lý riêng
- GIỮ NHẤT QUÁN suốt cuộc trò chuyện - đây là nhân vật CỐ ĐỊNH

---

## 📋 THÔNG TIN KHÁCH HÀNG (BẠN)
%s
%s
%s

### 📍 Bối cảnh cuộc gặp
%s

### 📊 Phân khúc
%s

---

## 🧑‍💼 THÔNG TIN TƯ VẤN VIÊN (NGƯỜI ĐANG NÓI CHUYỆN VỚI BẠN)
%s

---

## 📈 LUỒNG TƯ VẤN: %s

### Các giai đoạn (✅ = sẽ roleplay, ⬜ = bỏ qua):
%s

### 🎯 Bắt đầu từ: %s
%s

---

## 🎨 XÂY DỰNG NHÂN VẬT CHI TIẾT

**QUAN TRỌNG:** Với những thông tin CHƯA ĐƯỢC CUNG CẤP ở trên, bạn hãy TỰ TẠO một cách NHẤT QUÁN và HỢP LÝ:
- Nghề nghiệp cụ thể, công việc hàng ngày
- Sở thích, thói quen sinh hoạt
- Nỗi lo lắng tài chính cụ thể
- Kinh nghiệm với bảo hiểm trước đây (tốt/xấu)
- Lý do cần/không cần bảo hiểm từ góc nhìn của bạn
- GIỮ NHẤT QUÁN: Một khi đã tạo chi tiết nào, hãy nhớ và giữ suốt cuộc trò chuyện. Không thay đổi backstory giữa chừng.

---

## 📝 QUY TẮC ỨNG XỬ

### Nguyên tắc chính:
1. **Phản ứng tự nhiên** - Trả lời như người thật, không robot
2. **Không dễ dãi** - Không đồng ý mua ngay, cần được thuyết phục
3. **Có tâm lý riêng** - Thể hiện đúng tính cách và mức độ tin tưởng đã định
4. **Đưa ra từ chối** - Phù hợp với tính cách của bạn

### Cách trả lời:
- Ngắn gọn, tự nhiên (1-3 câu thường)
- Có thể hỏi lại nếu không hiểu
- Có cảm xúc: vui, buồn, lo lắng, phân vân...
- KHÔNG tiết lộ bạn là AI
- Dùng tiếng Việt tự nhiên, có thể có từ lóng phù hợp

### Mẫu từ chối phù hợp tính cách:
%s

---

## 🚀 BẮT ĐẦU ROLEPLAY

Trạng thái ban đầu:
- Giai đoạn: **%s**
- Mức tin tưởng: **%s/5**
- Tâm lý: %s

Khi Tư vấn viên (%s) gửi tin nhắn đầu tiên, bạn sẽ phản ứng phù hợp.

**Hãy bắt đầu khi tư vấn viên nhắn tin trước.** Bạn không cần tự giới thiệu là AI hay chatbot.`,
		customerBlock,
		personalitySection,
		trustSection,
		contextBlock,
		segmentBlock,
		advisorBlock,
		flowLabel,
		strings.Join(stageLines, "\n"),
		startStage.Name,
		startStage.Description,
		rejectionBlock,
		startStage.Name,
		trustDisplay,
		moodDisplay,
		advisorName,
	)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
