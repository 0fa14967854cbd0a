package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
)

// RoleplaySystem builds the system prompt that seeds a live roleplay chat.
// The personality defaults to skeptical when the customer's type is unset
// or unrecognized. An out-of-range stageIndex renders the flow's first
// stage rather than an empty section.
func RoleplaySystem(customer *persona.Customer, flowType flows.FlowType, stageIndex int) string {
	if customer == nil {
		customer = &persona.Customer{}
	}
	stages := flows.StagesFor(flowType)
	stage := stages[0]
	if stageIndex >= 0 && stageIndex < len(stages) {
		stage = stages[stageIndex]
	}

	behavior := persona.BehaviorFor(customer.PersonalityType)

	var objectionSamples string
	if len(customer.PotentialObjections) > 0 {
		n := len(customer.PotentialObjections)
		if n > 3 {
			n = 3
		}
		objectionSamples = strings.Join(customer.PotentialObjections[:n], ", ")
	} else {
		objectionSamples = strings.Join(persona.DefaultObjectionSamples(2), ", ")
	}

	basicInfo := "{}"
	if len(customer.BasicInfo) > 0 {
		if data, err := json.MarshalIndent(customer.BasicInfo, "", "  "); err == nil {
			basicInfo = string(data)
		}
	}

	story := customer.BackgroundStory
	if story == "" {
		story = "Bạn là một người bình thường với những lo lắng và mong muốn riêng."
	}

	traitKeys := make([]string, 0, len(behavior.Traits))
	for k := range behavior.Traits {
		traitKeys = append(traitKeys, k)
	}
	sort.Strings(traitKeys)
	traitLines := make([]string, 0, len(traitKeys))
	for _, k := range traitKeys {
		traitLines = append(traitLines, fmt.Sprintf("- %s: %s", k, behavior.Traits[k]))
	}

	samples := behavior.ResponsePatterns
	if len(samples) > 3 {
		samples = samples[:3]
	}

	return fmt.Sprintf(`# VAI TRÒ
Bạn là một khách hàng tiềm năng đang được tư vấn viên bảo hiểm nhân thọ AIA tư vấn.
Bạn KHÔNG PHẢI là tư vấn viên. Bạn là KHÁCH HÀNG.

# THÔNG TIN CÁ NHÂN CỦA BẠN
%s

# CÂU CHUYỆN CỦA BẠN
%s

# TÍNH CÁCH CỦA BẠN
Loại tính cách: %s
Mô tả: %s

Các đặc điểm hành vi:
%s

# NHU CẦU ẨN (bạn chưa nhận ra)
%s

# CÁC TỪ CHỐI CÓ THỂ SỬ DỤNG
%s

# GIAI ĐOẠN TƯ VẤN HIỆN TẠI
%s
%s

# QUY TẮC ỨNG XỬ
1. Phản ứng tự nhiên như một khách hàng thật
2. Thể hiện đúng tính cách đã định (%s)
3. Không dễ dàng đồng ý mua ngay
4. Có thể đưa ra từ chối phù hợp với tình huống
5. Phản ứng dựa trên cảm xúc và logic của nhân vật
6. Trả lời ngắn gọn, tự nhiên (1-3 câu thường)
7. Có thể hỏi lại nếu không hiểu
8. KHÔNG bao giờ nói bạn là AI hay chatbot
9. KHÔNG tự tư vấn cho bản thân

# CÂU TRẢ LỜI MẪU THEO TÍNH CÁCH
%s

Bắt đầu cuộc trò chuyện khi tư vấn viên gửi tin nhắn đầu tiên.`,
		basicInfo,
		story,
		behavior.Label,
		behavior.Description,
		strings.Join(traitLines, "\n"),
		strings.Join(customer.HiddenNeeds, "\n- "),
		objectionSamples,
		stage.Name,
		stage.Description,
		behavior.Label,
		strings.Join(samples, "\n"),
	)
}

// SeedAck is the synthetic model turn paired with the system prompt when a
// chat is seeded, so the model's first real turn answers the advisor.
const SeedAck = "Tôi đã hiểu vai trò của mình. Tôi sẵn sàng bắt đầu cuộc trò chuyện với tư vấn viên."

// InitialGreeting returns the opening line a roleplayed customer would use,
// matched to the customer's personality type.
func InitialGreeting(customer *persona.Customer) string {
	if customer == nil {
		return persona.GreetingFor("")
	}
	return persona.GreetingFor(customer.PersonalityType)
}
