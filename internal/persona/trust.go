package persona

// TrustLevel describes how a customer at a given trust level (1-5)
// behaves toward the advisor.
type TrustLevel struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Behaviors   []string `json:"behaviors"`
}

// TrustLevels maps level 1..5 to its profile.
var TrustLevels = map[int]TrustLevel{
	1: {
		Label:       "Rất thấp",
		Description: "Cảnh giác cao độ, nghi ngờ mọi thứ TVV nói",
		Behaviors:   []string{"Giữ khoảng cách rõ rệt", "Ít chia sẻ thông tin cá nhân", "Hay từ chối thẳng thừng", "Đặt câu hỏi mang tính thách thức"},
	},
	2: {
		Label:       "Thấp",
		Description: "Hoài nghi nhưng còn cho cơ hội",
		Behaviors:   []string{"Hỏi nhiều câu hỏi kiểm tra", "Cần chứng minh từng điểm", "Dễ bị mất niềm tin nếu TVV sai sót", "Hay so sánh với công ty khác"},
	},
	3: {
		Label:       "Trung bình",
		Description: "Trung lập, chưa tin nhưng cũng không phản đối",
		Behaviors:   []string{"Lắng nghe nhưng chưa cam kết", "Cần thêm thông tin", "Cân nhắc nghiêm túc", "Chia sẻ thông tin cơ bản"},
	},
	4: {
		Label:       "Khá cao",
		Description: "Có thiện cảm, sẵn sàng lắng nghe",
		Behaviors:   []string{"Chia sẻ thông tin cởi mở hơn", "Đặt câu hỏi xây dựng", "Quan tâm thực sự đến giải pháp", "Cởi mở với đề xuất"},
	},
	5: {
		Label:       "Cao",
		Description: "Tin tưởng TVV, chỉ cần giải pháp phù hợp",
		Behaviors:   []string{"Chia sẻ cả lo lắng sâu xa", "Sẵn sàng giới thiệu KH khác", "Mở với đề xuất", "Hỏi ý kiến TVV như chuyên gia"},
	},
}

// TrustFor resolves a trust level. Out-of-range levels fall back to the
// neutral level 3 profile; ok is false only for level 0 (unset).
func TrustFor(level int) (TrustLevel, bool) {
	if level == 0 {
		return TrustLevel{}, false
	}
	if t, ok := TrustLevels[level]; ok {
		return t, true
	}
	return TrustLevels[3], true
}
