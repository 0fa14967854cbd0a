package prompt

import (
	"fmt"
	"strings"

	"github.com/nmtri/rolecoach/internal/persona"
)

// Criterion is one review rubric entry with its fixed sub-aspects.
type Criterion struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Aspects []string `json:"aspects"`
}

// ReviewCriteria is the six-criterion rubric applied to a transcript, in
// fixed order.
var ReviewCriteria = []Criterion{
	{
		Key:   "communication",
		Label: "Kỹ năng giao tiếp",
		Aspects: []string{
			"Lắng nghe chủ động",
			"Đặt câu hỏi mở",
			"Tóm tắt ý khách",
			"Ngôn ngữ phù hợp đối tượng",
		},
	},
	{
		Key:   "empathy",
		Label: "Đồng cảm & Kết nối",
		Aspects: []string{
			"Thể hiện sự quan tâm chân thành",
			"Hiểu cảm xúc khách hàng",
			"Xây dựng rapport",
			"Không áp đặt",
		},
	},
	{
		Key:   "objection_handling",
		Label: "Xử lý từ chối",
		Aspects: []string{
			"Không phản ứng tiêu cực",
			"Tìm hiểu nguyên nhân sâu xa",
			"Đưa ra giải pháp phù hợp",
			"Không ép buộc",
		},
	},
	{
		Key:   "need_discovery",
		Label: "Khám phá nhu cầu",
		Aspects: []string{
			"Đặt câu hỏi đúng",
			"Không assume nhu cầu",
			"Kết nối nhu cầu với giải pháp",
			"Ưu tiên nhu cầu của KH",
		},
	},
	{
		Key:   "trust_building",
		Label: "Xây dựng niềm tin",
		Aspects: []string{
			"Minh bạch thông tin",
			"Không hứa suông",
			"Chuyên nghiệp",
			"Tạo giá trị cho KH",
		},
	},
	{
		Key:   "progression",
		Label: "Tiến trình tư vấn",
		Aspects: []string{
			"Chuyển giai đoạn tự nhiên",
			"Không vội vàng chốt",
			"Theo dõi tín hiệu KH",
			"Biết khi nào nên dừng",
		},
	},
}

// Review builds the one-shot transcript-analysis prompt. The transcript is
// embedded verbatim inside a fenced block; no parsing or validation is done
// on it here.
func Review(transcript string, advisor *persona.Advisor) string {
	if advisor == nil {
		advisor = &persona.Advisor{}
	}

	criteriaBlocks := make([]string, 0, len(ReviewCriteria))
	for _, c := range ReviewCriteria {
		criteriaBlocks = append(criteriaBlocks, fmt.Sprintf("### %s\n%s", c.Label, bulletList(c.Aspects)))
	}

	nameLine := "(Không rõ)"
	if advisor.Name != "" {
		nameLine = "- Tên: " + advisor.Name
	}
	expLine := ""
	if exp := advisor.ExperienceText(); exp != "" {
		expLine = "- Kinh nghiệm: " + exp
	}
	improvementsLine := ""
	if advisor.Improvements != "" {
		improvementsLine = "- Đang cải thiện: " + advisor.Improvements
	}

	return fmt.Sprintf(`# 📋 PHÂN TÍCH CUỘC TƯ VẤN BẢO HIỂM

## VAI TRÒ CỦA BẠN
Bạn là một HUẤN LUYỆN VIÊN TƯ VẤN BẢO HIỂM chuyên nghiệp. Hãy phân tích cuộc trò chuyện roleplay bên dưới và đưa ra đánh giá chi tiết, khách quan, mang tính xây dựng.

---

## THÔNG TIN TƯ VẤN VIÊN
%s
%s
%s

---

## TIÊU CHÍ ĐÁNH GIÁ

%s

---

## CUỘC TRÒ CHUYỆN CẦN PHÂN TÍCH

`+"```"+`
%s
`+"```"+`

---

## YÊU CẦU PHÂN TÍCH

Hãy đưa ra phân tích theo format sau:

### 📊 TỔNG QUAN
- **Điểm tổng thể:** X/10
- **Giai đoạn đạt được:** (Ví dụ: Đã hoàn thành Need Discovery, đang ở Presentation)
- **Mức độ tin tưởng cuối cùng:** X/5

### ✅ ĐIỂM MẠNH
Liệt kê 3-5 điểm TVV làm tốt, với ví dụ cụ thể từ cuộc trò chuyện.

### ⚠️ CẦN CẢI THIỆN
Liệt kê 3-5 điểm TVV cần cải thiện, với ví dụ cụ thể và giải thích tại sao.

### 🎯 GỢI Ý CẢI THIỆN
Đưa ra 3-5 gợi ý CỤ THỂ và THỰC TẾ mà TVV có thể áp dụng ngay:
- Câu nói thay thế
- Kỹ thuật cụ thể
- Thời điểm nên làm khác

### 🔄 KHẢ NĂNG CHUYỂN GIAI ĐOẠN
Đánh giá liệu TVV có đủ điều kiện để chuyển sang giai đoạn tiếp theo hay không, và cần làm gì để đạt được.

### 💡 CÂU NÓI GỢI Ý
Đưa ra 2-3 câu nói mẫu mà TVV có thể sử dụng trong tình huống tương tự.

---

**Lưu ý:** Hãy đưa ra phản hồi mang tính XÂY DỰNG, KHÁCH QUAN và CỤ THỂ. Tránh chung chung, và luôn đính kèm ví dụ từ cuộc trò chuyện thực tế.`,
		nameLine,
		expLine,
		improvementsLine,
		strings.Join(criteriaBlocks, "\n\n"),
		transcript,
	)
}
