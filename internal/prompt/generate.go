package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/persona"
)

// CustomerGeneration builds the one-shot prompt that asks Gemini to turn a
// free-text description into a complete customer persona as JSON.
func CustomerGeneration(description string, segment flows.Segment, flowType flows.FlowType) string {
	template := persona.MassMarketTemplate
	segmentLabel := "đại chúng"
	if segment == flows.SegmentHNW {
		template = persona.HNWTemplate
		segmentLabel = "cao cấp (HNW)"
	}

	personalityLines := make([]string, 0, len(persona.BehaviorOrder))
	for _, key := range persona.BehaviorOrder {
		b := persona.Behaviors[key]
		personalityLines = append(personalityLines, fmt.Sprintf("- %s: %s", b.Label, b.Description))
	}

	return fmt.Sprintf(`Bạn là chuyên gia tạo chân dung khách hàng cho đào tạo tư vấn viên bảo hiểm nhân thọ.

## Nhiệm vụ
Dựa trên mô tả sau, hãy tạo một chân dung khách hàng %s hoàn chỉnh, chi tiết và chân thực.

## Mô tả từ tư vấn viên
"%s"

## Yêu cầu
1. Điền đầy đủ tất cả các trường thông tin trong template
2. Với thông tin không được cung cấp, hãy suy luận hợp lý dựa trên context
3. Tạo background story nhất quán và logic
4. Chọn MỘT tính cách chính từ danh sách sau:
%s

## Template cần điền
%s

## Output format
Trả về JSON hợp lệ theo đúng cấu trúc template ở trên, thêm các trường sau:
- "personalityType": (một trong: skeptical, avoidant, analytical, emotional, social_pressure, impatient)
- "backgroundStory": (2-3 câu mô tả ngắn về cuộc sống khách hàng)
- "hiddenNeeds": (array các nhu cầu ẩn mà khách hàng chưa nhận ra)
- "potentialObjections": (array các từ chối có thể xảy ra)

CHỈ TRẢ VỀ JSON, KHÔNG CÓ TEXT KHÁC.`,
		segmentLabel,
		description,
		strings.Join(personalityLines, "\n"),
		template,
	)
}

// ParseCustomerResponse decodes the model's persona JSON, tolerating
// markdown code fences around the payload.
func ParseCustomerResponse(response string) (*persona.Customer, error) {
	jsonStr := strings.TrimSpace(response)
	if strings.HasPrefix(jsonStr, "```json") {
		jsonStr = jsonStr[len("```json"):]
	} else if strings.HasPrefix(jsonStr, "```") {
		jsonStr = jsonStr[len("```"):]
	}
	jsonStr = strings.TrimSuffix(strings.TrimSpace(jsonStr), "```")
	jsonStr = strings.TrimSpace(jsonStr)

	customer := &persona.Customer{}
	if err := json.Unmarshal([]byte(jsonStr), customer); err != nil {
		return nil, errors.NewInvalidRequest("không thể phân tích dữ liệu khách hàng: " + err.Error())
	}
	return customer, nil
}
